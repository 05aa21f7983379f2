package binding

import (
	"path/filepath"
	"strings"

	"github.com/bullish-design/templateer/pkg/config"
	"github.com/bullish-design/templateer/pkg/engine"
	"github.com/bullish-design/templateer/pkg/errors"
	"github.com/bullish-design/templateer/pkg/filesystem"
	"github.com/bullish-design/templateer/pkg/logging"
	"github.com/bullish-design/templateer/pkg/source"
)

// Renderer renders bindings and writes their output artifacts
type Renderer struct {
	cfg      *config.Config
	fs       filesystem.FS
	resolver *source.Resolver
	engine   *engine.Engine
}

// NewRenderer creates a Renderer
func NewRenderer(cfg *config.Config, fsys filesystem.FS, resolver *source.Resolver, eng *engine.Engine) *Renderer {
	return &Renderer{
		cfg:      cfg,
		fs:       fsys,
		resolver: resolver,
		engine:   eng,
	}
}

// Render resolves the binding's template and renders it with the
// binding's fields. The template is loaded fresh on every call.
func (r *Renderer) Render(b Binding) (string, error) {
	ref := b.TemplateRef()
	if ref == "" {
		return "", errors.Newf(errors.ErrLookup, "%s has no template reference", TypeName(b)).
			WithDetail("binding", TypeName(b))
	}

	def, err := r.resolver.Resolve(ref)
	if err != nil {
		return "", err
	}

	t, err := r.engine.Compile(def.Ref, def.Text)
	if err != nil {
		return "", err
	}

	data, err := Fields(b)
	if err != nil {
		return "", err
	}

	return r.engine.Execute(t, data)
}

// Generate renders b and, when write is set, writes the result to its
// output path, replacing any previous artifact. Nothing is written when
// rendering fails.
func (r *Renderer) Generate(b Binding, write bool) (string, error) {
	logger := logging.GetLogger("binding")

	text, err := r.Render(b)
	if err != nil {
		return "", err
	}
	if !write {
		return text, nil
	}

	path := r.OutputPath(b)
	if err := r.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory for %s", path).
			WithDetail("path", path)
	}
	if err := r.fs.WriteFile(path, []byte(text), 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).
			WithDetail("path", path)
	}

	logger.Debug().
		Str("binding", TypeName(b)).
		Str("template", b.TemplateRef()).
		Str("path", path).
		Int("bytes", len(text)).
		Msg("Wrote artifact")
	return text, nil
}

// OutputPath returns where b's artifact is written: the override when set,
// joined to the output directory if relative, or a name derived from the
// binding type.
func (r *Renderer) OutputPath(b Binding) string {
	if override := b.OutputOverride(); override != "" {
		if filepath.IsAbs(override) || strings.HasPrefix(override, "~") {
			return r.cfg.Root().Resolve(override)
		}
		return filepath.Join(r.cfg.OutputDir(), override)
	}
	return filepath.Join(r.cfg.OutputDir(), ArtifactName(TypeName(b), r.cfg.Stubs.ClassSuffix)+r.cfg.Output.Ext)
}

// ArtifactName derives the artifact base name from a binding type name by
// dropping the class suffix and lowercasing
func ArtifactName(typeName, classSuffix string) string {
	name := typeName
	if classSuffix != "" && name != classSuffix {
		name = strings.TrimSuffix(name, classSuffix)
	}
	return strings.ToLower(name)
}
