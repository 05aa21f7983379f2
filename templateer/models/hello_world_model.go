// Stub generated by templateer from .templateer/hello_world.go.
// Set field values in NewHelloWorldTemplate; templateer never overwrites this file.

package models

import "github.com/bullish-design/templateer/pkg/binding"

// HelloWorldTemplate binds data to hello_world.Template
type HelloWorldTemplate struct {
	binding.Base
}

// NewHelloWorldTemplate returns a HelloWorldTemplate ready to render
func NewHelloWorldTemplate() binding.Binding {
	return &HelloWorldTemplate{
		Base: binding.Base{Template: "hello_world.Template"},
	}
}

func init() {
	binding.MustRegister("hello_world_model", "HelloWorldTemplate", NewHelloWorldTemplate)
}
