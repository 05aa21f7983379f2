package binding

import (
	"reflect"
	"strings"

	"github.com/bullish-design/templateer/pkg/errors"
)

// TagName is the struct tag naming the template variable a field supplies
const TagName = "tmpl"

// Binding is a value that can be rendered through a template
type Binding interface {
	// TemplateRef returns the template reference key, "<stem>.<Attr>"
	TemplateRef() string
	// OutputOverride returns the output path to use instead of the
	// derived one, or "" for the default
	OutputOverride() string
}

// Base carries the template reference and output override. Embed it in
// every binding struct.
type Base struct {
	Template string
	Output   string
}

// TemplateRef implements Binding
func (b *Base) TemplateRef() string {
	return b.Template
}

// OutputOverride implements Binding
func (b *Base) OutputOverride() string {
	return b.Output
}

var baseType = reflect.TypeOf(Base{})

// Fields returns the template data carried by b. Exported fields are keyed
// by their tmpl tag or, without one, their Go name. A tag of "-" skips the
// field. An interface field holding nil is left out of the data, so a
// strict template reports it as missing.
func Fields(b any) (map[string]any, error) {
	v := reflect.ValueOf(b)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, errors.New(errors.ErrInvalidInput, "binding is nil")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, errors.Newf(errors.ErrInvalidInput, "binding must be a struct, got %s", v.Kind())
	}

	t := v.Type()
	data := make(map[string]any, t.NumField())
	seen := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || (f.Anonymous && f.Type == baseType) {
			continue
		}

		name := f.Name
		if tag, ok := f.Tag.Lookup(TagName); ok {
			tag, _, _ = strings.Cut(tag, ",")
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		if seen[name] {
			return nil, errors.Newf(errors.ErrInvalidInput, "%s: variable %q is supplied by more than one field", t.Name(), name).
				WithDetail("variable", name)
		}
		seen[name] = true

		fv := v.Field(i)
		if fv.Kind() == reflect.Interface && fv.IsNil() {
			continue
		}
		data[name] = fv.Interface()
	}
	return data, nil
}

// TypeName returns the struct type name behind b
func TypeName(b any) string {
	t := reflect.TypeOf(b)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return t.Name()
}

