package generator

import (
	stderrors "errors"
	"path/filepath"
	"strings"

	"github.com/bullish-design/templateer/pkg/binding"
	"github.com/bullish-design/templateer/pkg/config"
	"github.com/bullish-design/templateer/pkg/engine"
	"github.com/bullish-design/templateer/pkg/errors"
	"github.com/bullish-design/templateer/pkg/extract"
	"github.com/bullish-design/templateer/pkg/filesystem"
	"github.com/bullish-design/templateer/pkg/logging"
	"github.com/bullish-design/templateer/pkg/source"
	"github.com/bullish-design/templateer/pkg/stub"
)

// Options configures a Driver. Only Config is required.
type Options struct {
	Config *config.Config
	// FS defaults to the OS filesystem
	FS filesystem.FS
	// Bindings defaults to binding.Default()
	Bindings *binding.Registry
	// Resolver defaults to a resolver over the template directory
	Resolver *source.Resolver
	// Engine defaults to one using the configured delimiters
	Engine *engine.Engine
}

// Driver runs the discovery and generation passes
type Driver struct {
	cfg       *config.Config
	fs        filesystem.FS
	bindings  *binding.Registry
	resolver  *source.Resolver
	extractor *extract.Extractor
	stubs     *stub.Writer
	renderer  *binding.Renderer
}

// New creates a Driver, filling unset options with defaults
func New(opts Options) *Driver {
	cfg := opts.Config
	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	bindings := opts.Bindings
	if bindings == nil {
		bindings = binding.Default()
	}
	resolver := opts.Resolver
	if resolver == nil {
		resolver = source.NewResolver(fsys, cfg.TemplateDir())
	}
	eng := opts.Engine
	if eng == nil {
		eng = engine.New(cfg.Templates.LeftDelim, cfg.Templates.RightDelim)
	}

	return &Driver{
		cfg:       cfg,
		fs:        fsys,
		bindings:  bindings,
		resolver:  resolver,
		extractor: extract.New(eng),
		stubs:     stub.NewWriter(cfg, fsys),
		renderer:  binding.NewRenderer(cfg, fsys, resolver, eng),
	}
}

// Renderer returns the renderer the driver generates with
func (d *Driver) Renderer() *binding.Renderer {
	return d.renderer
}

// Bootstrap creates the model and output directories
func (d *Driver) Bootstrap() error {
	for _, dir := range []string{d.cfg.ModelDir(), d.cfg.OutputDir()} {
		if err := d.fs.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", dir).
				WithDetail("path", dir)
		}
	}
	return nil
}

// Autogen writes a stub for every discovered template that lacks one
func (d *Driver) Autogen() (*AutogenResult, error) {
	logger := logging.GetLogger("generator")
	defer logging.LogOperationStart(logger, "autogen")()

	if err := d.Bootstrap(); err != nil {
		return nil, err
	}

	files, err := source.Discover(d.fs, d.cfg.TemplateDir(), d.cfg.Templates.Glob)
	if err != nil {
		return nil, err
	}
	logger.Debug().Int("count", len(files)).Str("dir", d.cfg.TemplateDir()).Msg("Discovered template modules")

	res := &AutogenResult{}
	for _, path := range files {
		def, err := source.Load(d.fs, path, d.cfg.Templates.Attr)
		if err != nil {
			if stderrors.Is(err, source.ErrNoTemplate) {
				logger.Debug().Str("path", path).Msg("No template declared, skipping")
				res.Skipped = append(res.Skipped, path)
				continue
			}
			logger.Warn().Err(err).Str("path", path).Msg("Failed to load template")
			res.fail(path, err)
			continue
		}

		vars, err := d.extractor.Extract(def.Text)
		if err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("Failed to parse template")
			res.fail(path, err)
			continue
		}

		written, err := d.stubs.Write(def, vars)
		if err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("Failed to write stub")
			res.fail(path, err)
			continue
		}
		res.Stubs = append(res.Stubs, *written)
	}

	logger.Info().
		Int("created", res.Created()).
		Int("kept", len(res.Stubs)-res.Created()).
		Int("failed", len(res.Failures)).
		Msg("Autogen complete")
	return res, nil
}

// Generate runs Autogen, then renders the binding registered for each stub
// in the model directory. With write unset nothing is written to the
// output directory.
func (d *Driver) Generate(write bool) (*GenerateResult, error) {
	logger := logging.GetLogger("generator")
	defer logging.LogOperationStart(logger, "generate")()

	auto, err := d.Autogen()
	if err != nil {
		return nil, err
	}

	stubFiles, err := d.fs.Glob(d.cfg.ModelDir(), d.cfg.StubGlob())
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to list stubs in %s", d.cfg.ModelDir()).
			WithDetail("dir", d.cfg.ModelDir())
	}

	res := &GenerateResult{Autogen: auto}
	for _, path := range stubFiles {
		stem := strings.TrimSuffix(filepath.Base(path), ".go")

		entry, err := d.entryFor(stem)
		if err != nil {
			logger.Warn().Err(err).Str("stub", stem).Msg("Cannot bind stub")
			res.fail(stem, err)
			continue
		}

		artifact, err := d.render(entry, write)
		if err != nil {
			logger.Warn().Err(err).Str("stub", stem).Str("binding", entry.Name).Msg("Failed to render")
			res.fail(stem, err)
			continue
		}
		res.Artifacts = append(res.Artifacts, *artifact)
	}

	logger.Info().
		Int("rendered", len(res.Artifacts)).
		Int("failed", len(res.Failures)).
		Bool("write", write).
		Msg("Generate complete")
	return res, nil
}

// RenderOne renders the binding registered under name
func (d *Driver) RenderOne(name string, write bool) (*Artifact, error) {
	entry, err := d.bindings.Get(name)
	if err != nil {
		return nil, err
	}
	return d.render(entry, write)
}

// entryFor returns the single binding declared by a stub
func (d *Driver) entryFor(stem string) (binding.Entry, error) {
	entries := d.bindings.ForStub(stem)
	switch len(entries) {
	case 1:
		return entries[0], nil
	case 0:
		return binding.Entry{}, errors.Newf(errors.ErrAmbiguousBinding,
			"no binding registered for stub %s; rebuild the program that imports the model package", stem).
			WithDetail("stub", stem).
			WithDetail("count", 0)
	default:
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name
		}
		return binding.Entry{}, errors.Newf(errors.ErrAmbiguousBinding,
			"stub %s registers %d bindings (%s), expected one", stem, len(entries), strings.Join(names, ", ")).
			WithDetail("stub", stem).
			WithDetail("count", len(entries))
	}
}

func (d *Driver) render(entry binding.Entry, write bool) (*Artifact, error) {
	b, err := entry.Construct()
	if err != nil {
		return nil, err
	}

	text, err := d.renderer.Generate(b, write)
	if err != nil {
		return nil, err
	}
	return &Artifact{
		Stub:    entry.Stub,
		Binding: entry.Name,
		Path:    d.renderer.OutputPath(b),
		Written: write,
		Text:    text,
	}, nil
}
