// Stub generated by templateer from .templateer/simple_struct.go.
// Set field values in NewSimpleStructTemplate; templateer never overwrites this file.

package models

import "github.com/bullish-design/templateer/pkg/binding"

// SimpleStructTemplate binds data to simple_struct.Template
type SimpleStructTemplate struct {
	binding.Base

	Fields      any `tmpl:"fields"`
	Methods     any `tmpl:"methods"`
	PackageName any `tmpl:"package_name"`
	StructName  any `tmpl:"struct_name"`
}

// NewSimpleStructTemplate returns a SimpleStructTemplate ready to render
func NewSimpleStructTemplate() binding.Binding {
	return &SimpleStructTemplate{
		Base: binding.Base{Template: "simple_struct.Template"},
		Fields: []map[string]string{
			{"Name": "ID", "Type": "int"},
			{"Name": "Title", "Type": "string"},
			{"Name": "Tags", "Type": "[]string"},
		},
		Methods: []string{
			"// String returns the title.\nfunc (n *Note) String() string {\n\treturn n.Title\n}",
		},
		PackageName: "notes",
		StructName:  "Note",
	}
}

func init() {
	binding.MustRegister("simple_struct_model", "SimpleStructTemplate", NewSimpleStructTemplate)
}
