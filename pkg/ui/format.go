package ui

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/bullish-design/templateer/pkg/errors"
)

// Format is the value of the --format flag
type Format string

const (
	FormatAuto     Format = "auto"
	FormatTerminal Format = "term"
	FormatText     Format = "text"
	FormatJSON     Format = "json"
)

// Formats lists the accepted --format values
var Formats = []Format{FormatAuto, FormatTerminal, FormatText, FormatJSON}

var formatAliases = map[string]Format{
	"":         FormatAuto,
	"terminal": FormatTerminal,
	"plain":    FormatText,
}

// ParseFormat reads a --format value, case-insensitively
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if f, ok := formatAliases[name]; ok {
		return f, nil
	}
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}

	accepted := make([]string, len(Formats))
	for i, f := range Formats {
		accepted[i] = string(f)
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown output format %q (want one of %s)", s, strings.Join(accepted, ", ")).
		WithDetail("format", s)
}

// Resolve turns FormatAuto into a concrete format for out. Only an
// *os.File attached to a color-capable terminal gets FormatTerminal.
func Resolve(f Format, out io.Writer) Format {
	if f != FormatAuto {
		return f
	}
	file, ok := out.(*os.File)
	if !ok || !colorTerminal(file) {
		return FormatText
	}
	return FormatTerminal
}

// colorTerminal honours NO_COLOR, redirection and ASCII-only terminals
func colorTerminal(file *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := file.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}
