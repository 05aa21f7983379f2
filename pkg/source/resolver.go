package source

import (
	stderrors "errors"
	"path/filepath"

	"github.com/bullish-design/templateer/pkg/errors"
	"github.com/bullish-design/templateer/pkg/filesystem"
	"github.com/bullish-design/templateer/pkg/registry"
)

// templates holds templates compiled into the binary, keyed by reference
var templates = registry.New[func() string]("template")

// RegisterTemplate makes a template available under ref without a module
// file. Registered templates take precedence over the template directory.
func RegisterTemplate(ref string, text func() string) error {
	if _, _, err := SplitRef(ref); err != nil {
		return err
	}
	return templates.Register(ref, text)
}

// MustRegisterTemplate is RegisterTemplate for use in init functions
func MustRegisterTemplate(ref string, text func() string) {
	if err := RegisterTemplate(ref, text); err != nil {
		panic(err)
	}
}

// Resolver turns reference keys into template definitions
type Resolver struct {
	fs        filesystem.FS
	dir       string
	templates registry.Registry[func() string]
}

// NewResolver creates a Resolver that falls back to modules in dir
func NewResolver(fsys filesystem.FS, dir string) *Resolver {
	return &Resolver{
		fs:        fsys,
		dir:       dir,
		templates: templates,
	}
}

// WithTemplates replaces the in-process template set
func (r *Resolver) WithTemplates(reg registry.Registry[func() string]) *Resolver {
	r.templates = reg
	return r
}

// Resolve loads the template named by ref
func (r *Resolver) Resolve(ref string) (*Definition, error) {
	stem, attr, err := SplitRef(ref)
	if err != nil {
		return nil, err
	}

	if fn, err := r.templates.Get(ref); err == nil {
		return &Definition{Stem: stem, Attr: attr, Ref: ref, Text: fn()}, nil
	}

	path := filepath.Join(r.dir, stem+".go")
	if !filesystem.Exists(r.fs, path) {
		return nil, errors.Newf(errors.ErrLookup, "template module %s not found", stem).
			WithDetail("ref", ref).
			WithDetail("path", path)
	}

	def, err := Load(r.fs, path, attr)
	if err != nil {
		if stderrors.Is(err, ErrNoTemplate) {
			return nil, errors.Wrapf(err, errors.ErrLookup, "template module %s has no attribute %s", stem, attr).
				WithDetail("ref", ref)
		}
		return nil, err
	}
	return def, nil
}
