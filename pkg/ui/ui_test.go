package ui_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bullish-design/templateer/pkg/errors"
	"github.com/bullish-design/templateer/pkg/ui"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected ui.Format
		wantErr  bool
	}{
		{"", ui.FormatAuto, false},
		{"auto", ui.FormatAuto, false},
		{"TERM", ui.FormatTerminal, false},
		{"plain", ui.FormatText, false},
		{"json", ui.FormatJSON, false},
		{"xml", ui.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				assert.Contains(t, err.Error(), "auto, term, text, json")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolve(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, ui.FormatText, ui.Resolve(ui.FormatAuto, &buf))
	assert.Equal(t, ui.FormatJSON, ui.Resolve(ui.FormatJSON, &buf))
	assert.Equal(t, ui.FormatTerminal, ui.Resolve(ui.FormatTerminal, &buf))

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, ui.FormatText, ui.Resolve(ui.FormatAuto, os.Stdout))
}

func TestDefaultStyles(t *testing.T) {
	styles := ui.DefaultStyles()
	for _, name := range []string{ui.StyleSuccess, ui.StyleError, ui.StyleWarning, ui.StylePath, ui.StyleCount, ui.StyleMuted} {
		assert.Contains(t, styles, name)
	}
	assert.True(t, styles.Get(ui.StyleCount).GetBold())
	assert.False(t, styles.Get("NoSuchStyle").GetBold())
}

func TestParseStyles_Invalid(t *testing.T) {
	_, err := ui.ParseStyles([]byte("colors: [unclosed"))
	assert.Error(t, err)
}

func TestPrinter_PlainForNonFiles(t *testing.T) {
	var buf bytes.Buffer
	p := ui.NewPrinter(&buf, ui.FormatAuto)
	assert.Equal(t, ui.FormatText, p.Format())

	p.Header("Stubs")
	p.Println(p.Style(ui.StyleSuccess, "created"), p.Style(ui.StylePath, "models/a_model.go"))
	p.Printf("%d done\n", 2)

	assert.Equal(t, "Stubs\ncreated models/a_model.go\n2 done\n", buf.String())
	assert.Equal(t, "# Title", p.Markdown("# Title"))
}

func TestPrinter_JSON(t *testing.T) {
	var buf bytes.Buffer
	p := ui.NewPrinter(&buf, ui.FormatJSON)

	require.NoError(t, p.JSON(map[string]int{"rendered": 2}))
	assert.Equal(t, "{\n  \"rendered\": 2\n}\n", buf.String())
}

func TestPrinter_TerminalMarkdown(t *testing.T) {
	var buf bytes.Buffer
	p := ui.NewPrinter(&buf, ui.FormatTerminal)

	out := p.Markdown("# Conventions\n\nSome *text*.")
	assert.Contains(t, out, "Conventions")
}
