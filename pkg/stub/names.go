package stub

import (
	"strconv"
	"unicode"

	"github.com/bullish-design/templateer/pkg/engine"
)

// reserved names would collide with the embedded binding.Base
var reserved = map[string]bool{
	"Base":           true,
	"TemplateRef":    true,
	"OutputOverride": true,
}

// ClassName returns the binding type name for a template stem:
// hello_world becomes HelloWorldTemplate
func ClassName(stem, classSuffix string) string {
	return identifier(engine.Camel(stem), "T") + classSuffix
}

// FieldName returns the exported Go field name for a template variable:
// user_name becomes UserName
func FieldName(variable string) string {
	return identifier(engine.Camel(variable), "V")
}

// FieldNames maps sorted variables to unique field names. A name already
// taken gets the lowest free numeric suffix, starting at 2.
func FieldNames(variables []string) []string {
	used := make(map[string]bool, len(variables))
	names := make([]string, len(variables))
	for i, v := range variables {
		base := FieldName(v)
		name := base
		for n := 2; used[name] || reserved[name]; n++ {
			name = base + strconv.Itoa(n)
		}
		used[name] = true
		names[i] = name
	}
	return names
}

// identifier makes s a valid exported identifier, prefixing it when it is
// empty or starts with something other than a letter
func identifier(s, prefix string) string {
	var out []rune
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			out = append(out, r)
		}
	}
	if len(out) > 0 && unicode.IsLetter(out[0]) {
		out[0] = unicode.ToUpper(out[0])
	}
	if len(out) == 0 || !unicode.IsUpper(out[0]) {
		out = append([]rune(prefix), out...)
	}
	return string(out)
}
