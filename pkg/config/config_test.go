package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bullish-design/templateer/pkg/errors"
	"github.com/bullish-design/templateer/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ".templateer", cfg.Paths.TemplateDir)
	assert.Equal(t, "templateer/models", cfg.Paths.ModelDir)
	assert.Equal(t, "TEMPLATE_DIR", cfg.Paths.OutputDir)
	assert.Equal(t, "Template", cfg.Templates.Attr)
	assert.Equal(t, "_model", cfg.Stubs.Suffix)
	assert.Equal(t, "Template", cfg.Stubs.ClassSuffix)
	assert.Equal(t, ".go", cfg.Output.Ext)
	assert.Equal(t, "*_model.go", cfg.StubGlob())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_ProjectFileAndEnv(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".templateer.toml"), []byte(`
[paths]
template_dir = "tmpl"
output_dir = "gen"

[output]
ext = "py"
`), 0644))
	t.Setenv("MODEL_DIR", "custom/models")

	cfg, err := Load(LoadOptions{ProjectRoot: root})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "tmpl"), cfg.TemplateDir())
	assert.Equal(t, filepath.Join(root, "custom", "models"), cfg.ModelDir())
	assert.Equal(t, filepath.Join(root, "gen"), cfg.OutputDir())
	assert.Equal(t, ".py", cfg.Output.Ext, "extension gets a leading dot")
	assert.Equal(t, "Template", cfg.Templates.Attr, "untouched keys keep defaults")
	assert.Equal(t, root, cfg.ProjectRoot())
}

func TestLoad_DotEnv(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("TEMPLATEER_OUTPUT_DIR=from-dotenv\n"), 0644))
	t.Cleanup(func() { _ = os.Unsetenv("TEMPLATEER_OUTPUT_DIR") })

	cfg, err := Load(LoadOptions{ProjectRoot: root})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "from-dotenv"), cfg.OutputDir())
}

func TestLoad_EnvWinsOverDotEnv(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("TEMPLATE_OUTPUT_DIR=from-dotenv\n"), 0644))
	t.Setenv("TEMPLATE_OUTPUT_DIR", "from-env")

	cfg, err := Load(LoadOptions{ProjectRoot: root})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "from-env"), cfg.OutputDir())
}

func TestLoad_InvalidProjectFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "templateer.toml"), []byte("[paths\n"), 0644))

	_, err := Load(LoadOptions{ProjectRoot: root})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoad_EmptyValueRejected(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".templateer.toml"), []byte(`
[templates]
attr = "  "
`), 0644))

	_, err := Load(LoadOptions{ProjectRoot: root})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	assert.Equal(t, "templates.attr", errors.GetErrorDetails(err)["key"])
}

func TestRender_RoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Paths.OutputDir = "generated"

	data, err := Render(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# templateer project configuration.")
	assert.Regexp(t, `output_dir = ['"]generated['"]`, string(data))

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".templateer.toml"), data, 0644))

	loaded, err := Load(LoadOptions{ProjectRoot: root})
	require.NoError(t, err)
	assert.Equal(t, "generated", loaded.Paths.OutputDir)
	assert.Equal(t, cfg.Stubs, loaded.Stubs)
}

func TestWithProjectRoot(t *testing.T) {
	root := t.TempDir()
	p, err := paths.New(root)
	require.NoError(t, err)

	cfg := Default().WithProjectRoot(p)
	assert.Equal(t, filepath.Join(root, ".templateer"), cfg.TemplateDir())
}

func TestLoad_OverridesWin(t *testing.T) {
	root := t.TempDir()
	t.Setenv("TEMPLATEER_OUTPUT_DIR", "from-env")

	cfg, err := Load(LoadOptions{
		ProjectRoot: root,
		Overrides: map[string]interface{}{
			"paths.output_dir": "from-flag",
			"paths.model_dir":  "",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "from-flag"), cfg.OutputDir())
	assert.Equal(t, filepath.Join(root, "templateer", "models"), cfg.ModelDir(), "empty override is ignored")
}

func TestLoad_PrefixedEnvBeatsAlias(t *testing.T) {
	root := t.TempDir()
	t.Setenv("MODEL_DIR", "alias-models")
	t.Setenv("TEMPLATEER_MODEL_DIR", "prefixed-models")
	t.Setenv("TEMPLATE_OUTPUT_DIR", "alias-out")
	t.Setenv("TEMPLATEER_OUTPUT_DIR", "")

	cfg, err := Load(LoadOptions{ProjectRoot: root})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "prefixed-models"), cfg.ModelDir())
	assert.Equal(t, filepath.Join(root, "alias-out"), cfg.OutputDir(), "an empty prefixed variable does not hide the alias")
}
