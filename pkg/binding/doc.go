// Package binding attaches data to a template and renders it to disk.
//
// A binding is a struct that embeds Base. Base names the template by its
// reference key and optionally overrides the output path. The struct's
// exported fields become the template data, keyed by their tmpl tag:
//
//	type GreetingTemplate struct {
//		binding.Base
//
//		Name any `tmpl:"name"`
//	}
//
// Generated stubs register a constructor for their binding from init, so a
// program that imports the models package can enumerate and render every
// binding through the Default registry.
package binding
