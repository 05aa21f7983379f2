package models_test

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bullish-design/templateer/pkg/binding"
	"github.com/bullish-design/templateer/pkg/config"
	"github.com/bullish-design/templateer/pkg/engine"
	"github.com/bullish-design/templateer/pkg/extract"
	"github.com/bullish-design/templateer/pkg/filesystem"
	"github.com/bullish-design/templateer/pkg/generator"
	"github.com/bullish-design/templateer/pkg/paths"
	"github.com/bullish-design/templateer/pkg/source"
	"github.com/bullish-design/templateer/pkg/stub"

	_ "github.com/bullish-design/templateer/templateer/models"
)

func repoConfig(t *testing.T) *config.Config {
	t.Helper()
	root, err := paths.New(filepath.Join("..", ".."))
	require.NoError(t, err)
	return config.Default().WithProjectRoot(root)
}

func TestEveryTemplateHasABinding(t *testing.T) {
	cfg := repoConfig(t)
	fsys := filesystem.NewOS()
	extractor := extract.New(engine.New(cfg.Templates.LeftDelim, cfg.Templates.RightDelim))
	writer := stub.NewWriter(cfg, fsys)

	files, err := source.Discover(fsys, cfg.TemplateDir(), cfg.Templates.Glob)
	require.NoError(t, err)
	require.Len(t, files, 5)

	for _, path := range files {
		def, err := source.Load(fsys, path, cfg.Templates.Attr)
		require.NoError(t, err, path)

		t.Run(def.Stem, func(t *testing.T) {
			assert.True(t, filesystem.Exists(fsys, writer.Path(def.Stem)), "stub written")

			stubName := stub.StubName(def.Stem, cfg.Stubs.Suffix)
			entries := binding.Default().ForStub(stubName)
			require.Len(t, entries, 1)
			assert.Equal(t, stub.ClassName(def.Stem, cfg.Stubs.ClassSuffix), entries[0].Name)

			b := entries[0].New()
			assert.Equal(t, def.Ref, b.TemplateRef())

			vars, err := extractor.Extract(def.Text)
			require.NoError(t, err)
			fields, err := binding.Fields(b)
			require.NoError(t, err)
			for _, v := range vars.Sorted() {
				assert.Contains(t, fields, v, "binding sets %s", v)
			}
		})
	}
}

func TestGeneratedGoParses(t *testing.T) {
	cfg := repoConfig(t)
	driver := generator.New(generator.Options{Config: cfg, Bindings: binding.Default()})

	for _, e := range binding.Default().Entries() {
		t.Run(e.Name, func(t *testing.T) {
			art, err := driver.RenderOne(e.Name, false)
			require.NoError(t, err)
			assert.False(t, art.Written)

			if filepath.Ext(art.Path) != ".go" {
				return
			}
			_, err = parser.ParseFile(token.NewFileSet(), art.Path, art.Text, parser.ParseComments)
			assert.NoError(t, err, art.Text)
		})
	}
}

func TestGreeting(t *testing.T) {
	cfg := repoConfig(t)
	driver := generator.New(generator.Options{Config: cfg, Bindings: binding.Default()})

	art, err := driver.RenderOne("GreetingTemplate", false)
	require.NoError(t, err)
	assert.Equal(t, "Hello Ada!\n", art.Text)
	assert.Equal(t, filepath.Join(cfg.OutputDir(), "greeting.txt"), art.Path)
}
