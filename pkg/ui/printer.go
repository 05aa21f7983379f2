package ui

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/pterm/pterm"
)

// Printer writes command output in a fixed format
type Printer struct {
	out    io.Writer
	format Format
	styles Styles
}

// NewPrinter creates a Printer, resolving FormatAuto against out
func NewPrinter(out io.Writer, format Format) *Printer {
	return &Printer{
		out:    out,
		format: Resolve(format, out),
		styles: DefaultStyles(),
	}
}

// Format returns the resolved output format
func (p *Printer) Format() Format {
	return p.format
}

// Writer returns the underlying writer
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Style renders text with a semantic style in terminal mode and returns it
// unchanged otherwise
func (p *Printer) Style(name, text string) string {
	if p.format != FormatTerminal {
		return text
	}
	return p.styles.Get(name).Render(text)
}

// Header prints a bold section title
func (p *Printer) Header(title string) {
	if p.format == FormatTerminal {
		title = pterm.Bold.Sprint(title)
	}
	_, _ = fmt.Fprintln(p.out, title)
}

// Println prints a line
func (p *Printer) Println(a ...any) {
	_, _ = fmt.Fprintln(p.out, a...)
}

// Printf prints formatted text
func (p *Printer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(p.out, format, a...)
}

// JSON prints v as indented JSON
func (p *Printer) JSON(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Markdown renders markdown with glamour in terminal mode. Plain formats,
// or a glamour failure, get the source as is.
func (p *Printer) Markdown(content string) string {
	if p.format != FormatTerminal {
		return content
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
