package engine

import (
	"fmt"
	"strings"
	"text/template"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FuncMap returns the functions available inside templates
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"indent":  Indent,
		"nindent": func(n int, s string) string { return "\n" + Indent(n, s) },
		"lower":   strings.ToLower,
		"upper":   strings.ToUpper,
		"title":   cases.Title(language.Und, cases.NoLower).String,
		"camel":   Camel,
		"snake":   Snake,
		"quote":   func(v any) string { return fmt.Sprintf("%q", fmt.Sprint(v)) },
		"join":    join,
		"trim":    strings.TrimSpace,
		"default": defaultValue,
	}
}

// Indent prefixes every non-empty line of s with n spaces
func Indent(n int, s string) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}

// Camel converts snake_case or kebab-case to UpperCamelCase
func Camel(s string) string {
	title := cases.Title(language.Und, cases.NoLower)
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == '-' })
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(title.String(p))
	}
	return b.String()
}

// Snake converts CamelCase to snake_case
func Snake(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		if r == '-' {
			r = '_'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func join(sep string, items any) (string, error) {
	switch v := items.(type) {
	case []string:
		return strings.Join(v, sep), nil
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, sep), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("join: unsupported type %T", items)
	}
}

// defaultValue returns def when v is nil or an empty string
func defaultValue(def, v any) any {
	if v == nil {
		return def
	}
	if s, ok := v.(string); ok && s == "" {
		return def
	}
	return v
}
