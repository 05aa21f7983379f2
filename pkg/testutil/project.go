package testutil

import (
	"path/filepath"
	"testing"

	"github.com/bullish-design/templateer/pkg/config"
	"github.com/bullish-design/templateer/pkg/filesystem"
	"github.com/bullish-design/templateer/pkg/paths"
)

// Project is an isolated project root on the real filesystem with the
// default directory layout and a Config bound to it
type Project struct {
	Root   string
	Config *config.Config
	FS     filesystem.FS

	t *testing.T
}

// NewProject creates a project in a temp directory. The template, model
// and output directories are created.
func NewProject(t *testing.T) *Project {
	t.Helper()

	root := t.TempDir()
	p, err := paths.New(root)
	if err != nil {
		t.Fatalf("Failed to create paths for %s: %v", root, err)
	}

	cfg := config.Default().WithProjectRoot(p)
	proj := &Project{
		Root:   p.ProjectRoot(),
		Config: cfg,
		FS:     filesystem.NewOS(),
		t:      t,
	}

	CreateDir(t, proj.Root, cfg.Paths.TemplateDir)
	CreateDir(t, proj.Root, cfg.Paths.ModelDir)
	CreateDir(t, proj.Root, cfg.Paths.OutputDir)
	return proj
}

// Path joins rel to the project root
func (p *Project) Path(rel string) string {
	return filepath.Join(p.Root, rel)
}

// AddTemplate writes a template module <stem>.go declaring text under the
// configured attribute and returns its path
func (p *Project) AddTemplate(stem, text string) string {
	p.t.Helper()
	return CreateFile(p.t, p.Config.TemplateDir(), stem+".go", TemplateModule(p.Config.Templates.Attr, text))
}

// AddTemplateSource writes raw source as a template module and returns its path
func (p *Project) AddTemplateSource(stem, src string) string {
	p.t.Helper()
	return CreateFile(p.t, p.Config.TemplateDir(), stem+".go", src)
}

// StubPath returns where the stub for stem is written
func (p *Project) StubPath(stem string) string {
	return filepath.Join(p.Config.ModelDir(), stem+p.Config.Stubs.Suffix+".go")
}

// OutputPath returns the artifact path for a base name in the output directory
func (p *Project) OutputPath(name string) string {
	return filepath.Join(p.Config.OutputDir(), name)
}
