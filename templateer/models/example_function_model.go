// Stub generated by templateer from .templateer/example_function.go.
// Set field values in NewExampleFunctionTemplate; templateer never overwrites this file.

package models

import "github.com/bullish-design/templateer/pkg/binding"

// ExampleFunctionTemplate binds data to example_function.Template
type ExampleFunctionTemplate struct {
	binding.Base

	Body        any `tmpl:"body"`
	Doc         any `tmpl:"doc"`
	FuncName    any `tmpl:"func_name"`
	PackageName any `tmpl:"package_name"`
}

// NewExampleFunctionTemplate returns a ExampleFunctionTemplate ready to render
func NewExampleFunctionTemplate() binding.Binding {
	return &ExampleFunctionTemplate{
		Base:        binding.Base{Template: "example_function.Template"},
		Body:        "return \"Hi, \" + name",
		Doc:         "returns a short greeting for name.",
		FuncName:    "Greet",
		PackageName: "greetings",
	}
}

func init() {
	binding.MustRegister("example_function_model", "ExampleFunctionTemplate", NewExampleFunctionTemplate)
}
