package templates

// Template renders a struct with typed fields and optional methods.
const Template = `package {{ .package_name }}

// {{ .struct_name }} was generated by templateer.
type {{ .struct_name }} struct {
{{- range .fields }}
	{{ .Name }} {{ .Type }}
{{- end }}
}
{{ range .methods }}
{{ . }}
{{ end -}}
`
