package stub

import (
	"bytes"
	_ "embed"
	stderrors "errors"
	"io/fs"
	"path"
	"path/filepath"
	"strconv"
	"text/template"

	"mvdan.cc/gofumpt/format"

	"github.com/bullish-design/templateer/pkg/config"
	"github.com/bullish-design/templateer/pkg/errors"
	"github.com/bullish-design/templateer/pkg/extract"
	"github.com/bullish-design/templateer/pkg/filesystem"
	"github.com/bullish-design/templateer/pkg/logging"
	"github.com/bullish-design/templateer/pkg/source"
)

//go:embed embedded/stub.go.tmpl
var stubTemplate string

var stubTmpl = template.Must(template.New("stub").Option("missingkey=error").Parse(stubTemplate))

// Result reports where a stub lives and whether this call created it
type Result struct {
	Path    string
	Created bool
}

// Writer writes stubs into the model directory
type Writer struct {
	cfg *config.Config
	fs  filesystem.FS
}

// NewWriter creates a Writer
func NewWriter(cfg *config.Config, fsys filesystem.FS) *Writer {
	return &Writer{cfg: cfg, fs: fsys}
}

// Path returns the stub file for a template stem
func (w *Writer) Path(stem string) string {
	return filepath.Join(w.cfg.ModelDir(), StubName(stem, w.cfg.Stubs.Suffix)+".go")
}

// StubName returns the stub file stem for a template stem
func StubName(stem, suffix string) string {
	return stem + suffix
}

// Write creates the stub for def unless one already exists. An existing
// stub is returned untouched with Created false.
func (w *Writer) Write(def *source.Definition, vars extract.Set) (*Result, error) {
	logger := logging.GetLogger("stub")
	p := w.Path(def.Stem)

	if filesystem.Exists(w.fs, p) {
		logger.Debug().Str("path", p).Msg("Stub exists, keeping it")
		return &Result{Path: p}, nil
	}

	src, err := w.Source(def, vars)
	if err != nil {
		return nil, err
	}

	if err := w.fs.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create model directory %s", filepath.Dir(p)).
			WithDetail("path", p)
	}

	if err := w.fs.CreateExclusive(p, src, 0644); err != nil {
		// Lost a race with another writer; theirs stands
		if stderrors.Is(err, fs.ErrExist) {
			return &Result{Path: p}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to write stub %s", p).
			WithDetail("path", p)
	}

	logger.Info().
		Str("template", def.Ref).
		Str("path", p).
		Int("fields", len(vars)).
		Msg("Created stub")
	return &Result{Path: p, Created: true}, nil
}

type stubField struct {
	Name string
	Var  string
}

type stubData struct {
	Origin      string
	Package     string
	Import      string
	ClassName   string
	Constructor string
	Ref         string
	Stub        string
	Fields      []stubField
}

// Source renders the gofumpt-formatted stub source for def
func (w *Writer) Source(def *source.Definition, vars extract.Set) ([]byte, error) {
	sorted := vars.Sorted()
	names := FieldNames(sorted)
	fields := make([]stubField, len(sorted))
	for i, v := range sorted {
		fields[i] = stubField{Name: names[i], Var: v}
	}

	className := ClassName(def.Stem, w.cfg.Stubs.ClassSuffix)
	data := stubData{
		Origin:      w.origin(def),
		Package:     w.cfg.Stubs.Package,
		Import:      importSpec(w.cfg.Stubs.BindingImport),
		ClassName:   className,
		Constructor: "New" + className,
		Ref:         def.Ref,
		Stub:        StubName(def.Stem, w.cfg.Stubs.Suffix),
		Fields:      fields,
	}

	var buf bytes.Buffer
	if err := stubTmpl.Execute(&buf, data); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to render stub for %s", def.Ref)
	}

	formatted, err := format.Source(buf.Bytes(), format.Options{})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "generated stub for %s is not valid Go", def.Ref).
			WithDetail("source", buf.String())
	}
	return formatted, nil
}

// origin names the template a stub came from, relative to the project root
func (w *Writer) origin(def *source.Definition) string {
	if def.Path == "" {
		return def.Ref
	}
	return filepath.ToSlash(w.cfg.Root().Rel(def.Path))
}

// importSpec quotes the binding import path, aliasing it when the last
// path element is not the package name the stub refers to
func importSpec(importPath string) string {
	quoted := strconv.Quote(importPath)
	if path.Base(importPath) != "binding" {
		return "binding " + quoted
	}
	return quoted
}
