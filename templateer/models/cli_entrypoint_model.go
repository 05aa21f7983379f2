// Stub generated by templateer from .templateer/cli_entrypoint.go.
// Set field values in NewCliEntrypointTemplate; templateer never overwrites this file.

package models

import "github.com/bullish-design/templateer/pkg/binding"

// CliEntrypointTemplate binds data to cli_entrypoint.Template
type CliEntrypointTemplate struct {
	binding.Base

	CommandName any `tmpl:"command_name"`
	Options     any `tmpl:"options"`
}

// NewCliEntrypointTemplate returns a CliEntrypointTemplate ready to render
func NewCliEntrypointTemplate() binding.Binding {
	return &CliEntrypointTemplate{
		Base:        binding.Base{Template: "cli_entrypoint.Template"},
		CommandName: "greet",
		Options: []map[string]string{
			{"Flag": "name", "Default": "world", "Help": "Who to greet"},
			{"Flag": "greeting", "Default": "Hello", "Help": "Greeting word"},
		},
	}
}

func init() {
	binding.MustRegister("cli_entrypoint_model", "CliEntrypointTemplate", NewCliEntrypointTemplate)
}
