package templates

// Template renders a flag-based command entry point.
const Template = `// Command {{ .command_name }} was generated by templateer.
package main

import (
	"flag"
	"fmt"
)

func main() {
{{- range .options }}
	{{ camel .Flag }} := flag.String({{ quote .Flag }}, {{ quote .Default }}, {{ quote .Help }})
{{- end }}
	flag.Parse()
{{ range .options }}
	fmt.Println({{ quote .Flag }}, *{{ camel .Flag }})
{{- end }}
}
`
