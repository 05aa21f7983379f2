package engine

import (
	"bytes"
	"text/template"

	"github.com/bullish-design/templateer/pkg/errors"
)

// Engine compiles and executes templates with strict variable handling
type Engine struct {
	leftDelim  string
	rightDelim string
	funcs      template.FuncMap
}

// New creates an Engine using the given delimiters; empty delimiters fall
// back to the text/template defaults
func New(leftDelim, rightDelim string) *Engine {
	return &Engine{
		leftDelim:  leftDelim,
		rightDelim: rightDelim,
		funcs:      FuncMap(),
	}
}

// Delims returns the configured delimiters
func (e *Engine) Delims() (string, string) {
	return e.leftDelim, e.rightDelim
}

// Funcs returns the function map templates are parsed with
func (e *Engine) Funcs() template.FuncMap {
	return e.funcs
}

// Compile parses text into a template that fails on missing keys
func (e *Engine) Compile(name, text string) (*template.Template, error) {
	t, err := template.New(name).
		Delims(e.leftDelim, e.rightDelim).
		Funcs(e.funcs).
		Option("missingkey=error").
		Parse(text)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrParse, "failed to parse template %s", name).
			WithDetail("template", name)
	}
	return t, nil
}

// Execute renders t against data. Nothing is returned on failure, so a
// caller never sees partially rendered output.
func (e *Engine) Execute(t *template.Template, data map[string]any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", errors.Wrapf(err, errors.ErrRender, "failed to render template %s", t.Name()).
			WithDetail("template", t.Name())
	}
	return buf.String(), nil
}

// Render compiles and executes text in one step
func (e *Engine) Render(name, text string, data map[string]any) (string, error) {
	t, err := e.Compile(name, text)
	if err != nil {
		return "", err
	}
	return e.Execute(t, data)
}
