// Stub generated by templateer from .templateer/greeting.go.
// Set field values in NewGreetingTemplate; templateer never overwrites this file.

package models

import "github.com/bullish-design/templateer/pkg/binding"

// GreetingTemplate binds data to greeting.Template
type GreetingTemplate struct {
	binding.Base

	Name any `tmpl:"name"`
}

// NewGreetingTemplate returns a GreetingTemplate ready to render
func NewGreetingTemplate() binding.Binding {
	return &GreetingTemplate{
		Base: binding.Base{Template: "greeting.Template", Output: "greeting.txt"},
		Name: "Ada",
	}
}

func init() {
	binding.MustRegister("greeting_model", "GreetingTemplate", NewGreetingTemplate)
}
