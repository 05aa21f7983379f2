// Package extract infers the free variables of a template: the top-level
// names a template reads from its data but never binds itself.
//
// Given
//
//	{{ range $f := .fields }}{{ .Name }} {{ $.prefix }}{{ end }}{{ .pkg }}
//
// the free variables are fields, prefix and pkg. Name is read from the
// range element, not from the template data, and $f is template-local.
package extract
