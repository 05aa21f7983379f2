package binding_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bullish-design/templateer/pkg/binding"
	"github.com/bullish-design/templateer/pkg/config"
	"github.com/bullish-design/templateer/pkg/engine"
	"github.com/bullish-design/templateer/pkg/errors"
	"github.com/bullish-design/templateer/pkg/filesystem"
	"github.com/bullish-design/templateer/pkg/paths"
	"github.com/bullish-design/templateer/pkg/registry"
	"github.com/bullish-design/templateer/pkg/source"
	"github.com/bullish-design/templateer/pkg/testutil"
)

type GreetingTemplate struct {
	binding.Base

	Name any `tmpl:"name"`
}

type EmptyTemplate struct {
	binding.Base
}

func newRenderer(cfg *config.Config, fsys filesystem.FS) *binding.Renderer {
	resolver := source.NewResolver(fsys, cfg.TemplateDir()).WithTemplates(registry.New[func() string]("template"))
	eng := engine.New(cfg.Templates.LeftDelim, cfg.Templates.RightDelim)
	return binding.NewRenderer(cfg, fsys, resolver, eng)
}

func TestRenderer_Generate(t *testing.T) {
	p := testutil.NewProject(t)
	p.AddTemplate("greeting", "Hello {{ .name }}!")
	r := newRenderer(p.Config, p.FS)

	b := &GreetingTemplate{Base: binding.Base{Template: "greeting.Template"}, Name: "Ada"}

	text, err := r.Generate(b, true)
	require.NoError(t, err)
	assert.Equal(t, "Hello Ada!", text)

	out := p.OutputPath("greeting.go")
	assert.Equal(t, out, r.OutputPath(b))
	testutil.AssertFileContent(t, p.FS, out, "Hello Ada!")

	// Artifacts are replaced on every run
	b.Name = "Grace"
	_, err = r.Generate(b, true)
	require.NoError(t, err)
	testutil.AssertFileContent(t, p.FS, out, "Hello Grace!")
}

func TestRenderer_GenerateWithoutWrite(t *testing.T) {
	p := testutil.NewProject(t)
	p.AddTemplate("greeting", "Hello {{ .name }}!")
	r := newRenderer(p.Config, p.FS)

	text, err := r.Generate(&GreetingTemplate{Base: binding.Base{Template: "greeting.Template"}, Name: "Ada"}, false)
	require.NoError(t, err)
	assert.Equal(t, "Hello Ada!", text)
	testutil.AssertNoFile(t, p.FS, p.OutputPath("greeting.go"))
}

func TestRenderer_MissingField(t *testing.T) {
	p := testutil.NewProject(t)
	p.AddTemplate("greeting", "Hello {{ .name }}!")
	r := newRenderer(p.Config, p.FS)

	t.Run("field unset", func(t *testing.T) {
		b := &GreetingTemplate{Base: binding.Base{Template: "greeting.Template"}}
		text, err := r.Generate(b, true)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRender))
		assert.Empty(t, text)
		testutil.AssertNoFile(t, p.FS, p.OutputPath("greeting.go"))
	})

	t.Run("field absent", func(t *testing.T) {
		b := &EmptyTemplate{Base: binding.Base{Template: "greeting.Template"}}
		_, err := r.Generate(b, true)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRender))
		testutil.AssertNoFile(t, p.FS, p.OutputPath("empty.go"))
	})
}

func TestRenderer_ZeroVariables(t *testing.T) {
	p := testutil.NewProject(t)
	p.AddTemplate("empty", "static text\n")
	r := newRenderer(p.Config, p.FS)

	text, err := r.Generate(&EmptyTemplate{Base: binding.Base{Template: "empty.Template"}}, true)
	require.NoError(t, err)
	assert.Equal(t, "static text\n", text)
	testutil.AssertFileContent(t, p.FS, p.OutputPath("empty.go"), "static text\n")
}

func TestRenderer_LookupAndParseErrors(t *testing.T) {
	p := testutil.NewProject(t)
	p.AddTemplate("broken", "{{ .name ")
	r := newRenderer(p.Config, p.FS)

	tests := []struct {
		name string
		ref  string
		code errors.ErrorCode
	}{
		{"no reference", "", errors.ErrLookup},
		{"missing module", "absent.Template", errors.ErrLookup},
		{"missing attribute", "broken.Other", errors.ErrLookup},
		{"unparsable template", "broken.Template", errors.ErrParse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Render(&GreetingTemplate{Base: binding.Base{Template: tt.ref}, Name: "x"})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), err.Error())
		})
	}
}

func TestRenderer_OutputOverride(t *testing.T) {
	p := testutil.NewProject(t)
	p.AddTemplate("greeting", "Hello {{ .name }}!")
	r := newRenderer(p.Config, p.FS)

	rel := &GreetingTemplate{Base: binding.Base{Template: "greeting.Template", Output: "nested/hello.txt"}, Name: "Ada"}
	_, err := r.Generate(rel, true)
	require.NoError(t, err)
	testutil.AssertFileContent(t, p.FS, p.OutputPath(filepath.Join("nested", "hello.txt")), "Hello Ada!")

	abs := filepath.Join(t.TempDir(), "elsewhere", "hello.txt")
	b := &GreetingTemplate{Base: binding.Base{Template: "greeting.Template", Output: abs}, Name: "Ada"}
	assert.Equal(t, abs, r.OutputPath(b))
	_, err = r.Generate(b, true)
	require.NoError(t, err)
	testutil.AssertFileContent(t, p.FS, abs, "Hello Ada!")
}

func TestRenderer_WriteFailure(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	root, err := paths.New("/project")
	require.NoError(t, err)
	cfg := config.Default().WithProjectRoot(root)

	require.NoError(t, fsys.MkdirAll(cfg.TemplateDir(), 0755))
	require.NoError(t, fsys.WriteFile(filepath.Join(cfg.TemplateDir(), "greeting.go"),
		[]byte(testutil.TemplateModule("Template", "Hello {{ .name }}!")), 0644))
	fsys.InjectError(cfg.OutputDir(), assert.AnError)

	r := newRenderer(cfg, fsys)
	_, err = r.Generate(&GreetingTemplate{Base: binding.Base{Template: "greeting.Template"}, Name: "Ada"}, true)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirCreate))
	assert.Equal(t, 1, fsys.WriteCount(), "only the fixture was written")
}
