package templates

// Template renders a single function taking a name.
const Template = `package {{ .package_name }}
{{ if .doc }}
// {{ .func_name }} {{ .doc }}
{{- end }}
func {{ .func_name }}(name string) string {
{{ default "return name" .body | indent 4 }}
}
`
