// Package source finds and loads template modules.
//
// A template module is a Go file in the template directory that declares
// the template text as a package-level string:
//
//	package templates
//
//	const Template = "Hello {{ .name }}!"
//
// The directory normally starts with a dot so the Go toolchain ignores it.
// A module is addressed by a reference of the form "<stem>.<Attr>", where
// stem is the file name without ".go". References are resolved first
// against templates registered in-process with RegisterTemplate, then
// against the template directory.
package source
