package config

import (
	"strings"

	"github.com/bullish-design/templateer/pkg/errors"
	"github.com/bullish-design/templateer/pkg/paths"
)

// Config is the complete templateer configuration
type Config struct {
	Paths     PathsConfig     `koanf:"paths" toml:"paths"`
	Templates TemplatesConfig `koanf:"templates" toml:"templates"`
	Stubs     StubsConfig     `koanf:"stubs" toml:"stubs"`
	Output    OutputConfig    `koanf:"output" toml:"output"`

	root *paths.Paths
}

// PathsConfig holds the three working directories
type PathsConfig struct {
	// TemplateDir holds template modules
	TemplateDir string `koanf:"template_dir" toml:"template_dir"`
	// ModelDir is where stubs are written and later enumerated
	ModelDir string `koanf:"model_dir" toml:"model_dir"`
	// OutputDir is where rendered artifacts land
	OutputDir string `koanf:"output_dir" toml:"output_dir"`
}

// TemplatesConfig controls template discovery and parsing
type TemplatesConfig struct {
	Attr       string `koanf:"attr" toml:"attr"`
	Glob       string `koanf:"glob" toml:"glob"`
	LeftDelim  string `koanf:"left_delim" toml:"left_delim"`
	RightDelim string `koanf:"right_delim" toml:"right_delim"`
}

// StubsConfig controls the naming and shape of generated stubs
type StubsConfig struct {
	Suffix        string `koanf:"suffix" toml:"suffix"`
	ClassSuffix   string `koanf:"class_suffix" toml:"class_suffix"`
	Package       string `koanf:"package" toml:"package"`
	BindingImport string `koanf:"binding_import" toml:"binding_import"`
}

// OutputConfig controls rendered artifact naming
type OutputConfig struct {
	Ext string `koanf:"ext" toml:"ext"`
}

// ProjectRoot returns the absolute project root
func (c *Config) ProjectRoot() string {
	return c.Root().ProjectRoot()
}

// Root returns the path resolver, defaulting to the current directory
func (c *Config) Root() *paths.Paths {
	if c.root == nil {
		p, err := paths.New(".")
		if err != nil {
			panic(err)
		}
		c.root = p
	}
	return c.root
}

// WithProjectRoot binds the config to a project root
func (c *Config) WithProjectRoot(root *paths.Paths) *Config {
	c.root = root
	return c
}

// TemplateDir returns the absolute template source directory
func (c *Config) TemplateDir() string {
	return c.Root().Resolve(c.Paths.TemplateDir)
}

// ModelDir returns the absolute stub directory
func (c *Config) ModelDir() string {
	return c.Root().Resolve(c.Paths.ModelDir)
}

// OutputDir returns the absolute artifact directory
func (c *Config) OutputDir() string {
	return c.Root().Resolve(c.Paths.OutputDir)
}

// StubGlob returns the pattern matching stub files in the model directory
func (c *Config) StubGlob() string {
	return "*" + c.Stubs.Suffix + ".go"
}

// Validate checks that every required setting is present
func (c *Config) Validate() error {
	required := []struct{ key, value string }{
		{"paths.template_dir", c.Paths.TemplateDir},
		{"paths.model_dir", c.Paths.ModelDir},
		{"paths.output_dir", c.Paths.OutputDir},
		{"templates.attr", c.Templates.Attr},
		{"templates.glob", c.Templates.Glob},
		{"templates.left_delim", c.Templates.LeftDelim},
		{"templates.right_delim", c.Templates.RightDelim},
		{"stubs.suffix", c.Stubs.Suffix},
		{"stubs.package", c.Stubs.Package},
		{"stubs.binding_import", c.Stubs.BindingImport},
		{"output.ext", c.Output.Ext},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return errors.Newf(errors.ErrConfigValid, "%s must not be empty", r.key).WithDetail("key", r.key)
		}
	}
	return nil
}

func postProcessConfig(cfg *Config) error {
	if cfg.Output.Ext != "" && !strings.HasPrefix(cfg.Output.Ext, ".") {
		cfg.Output.Ext = "." + cfg.Output.Ext
	}
	return cfg.Validate()
}
