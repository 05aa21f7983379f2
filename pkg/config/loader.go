package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/bullish-design/templateer/pkg/errors"
	"github.com/bullish-design/templateer/pkg/logging"
	"github.com/bullish-design/templateer/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ProjectConfigFiles are the project-level config file names, first match wins
var ProjectConfigFiles = []string{".templateer.toml", "templateer.toml"}

// envKeys maps environment variables to config keys. MODEL_DIR and
// TEMPLATE_OUTPUT_DIR are kept unprefixed for compatibility with existing
// project setups.
var envKeys = map[string]string{
	"MODEL_DIR":                 "paths.model_dir",
	"TEMPLATE_OUTPUT_DIR":       "paths.output_dir",
	"TEMPLATEER_MODEL_DIR":      "paths.model_dir",
	"TEMPLATEER_OUTPUT_DIR":     "paths.output_dir",
	"TEMPLATEER_TEMPLATE_DIR":   "paths.template_dir",
	"TEMPLATEER_TEMPLATE_ATTR":  "templates.attr",
	"TEMPLATEER_TEMPLATE_GLOB":  "templates.glob",
	"TEMPLATEER_STUB_SUFFIX":    "stubs.suffix",
	"TEMPLATEER_STUB_PACKAGE":   "stubs.package",
	"TEMPLATEER_BINDING_IMPORT": "stubs.binding_import",
	"TEMPLATEER_OUTPUT_EXT":     "output.ext",
}

// envAliases maps the unprefixed variables to the prefixed ones that take
// precedence over them
var envAliases = map[string]string{
	"MODEL_DIR":           "TEMPLATEER_MODEL_DIR",
	"TEMPLATE_OUTPUT_DIR": "TEMPLATEER_OUTPUT_DIR",
}

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// ProjectRoot overrides root discovery when set
	ProjectRoot string

	// Overrides are applied last, keyed by dotted config key
	// (e.g. "paths.output_dir"). Empty values are ignored.
	Overrides map[string]interface{}
}

// Load builds the configuration for a project
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")

	root, err := paths.New(opts.ProjectRoot)
	if err != nil {
		return nil, err
	}

	// .env never overrides variables already present in the environment
	dotenv := filepath.Join(root.ProjectRoot(), ".env")
	if _, err := os.Stat(dotenv); err == nil {
		if err := godotenv.Load(dotenv); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load %s", dotenv)
		}
	}

	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Project config if it exists
	for _, name := range ProjectConfigFiles {
		path := filepath.Join(root.ProjectRoot(), name)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load project config from %s", path)
			}
			logger.Debug().Str("path", path).Msg("Loaded project config")
			break
		}
	}

	// 3. Environment
	if err := k.Load(env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		if strings.TrimSpace(value) == "" {
			return "", nil
		}
		if prefixed, ok := envAliases[key]; ok && strings.TrimSpace(os.Getenv(prefixed)) != "" {
			return "", nil
		}
		return envKeys[key], value
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Explicit overrides, usually from command-line flags
	if overrides := nonEmpty(opts.Overrides); len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	cfg.root = root

	logger.Debug().
		Str("project_root", root.ProjectRoot()).
		Bool("fallback", root.UsedFallback()).
		Str("template_dir", cfg.TemplateDir()).
		Str("model_dir", cfg.ModelDir()).
		Str("output_dir", cfg.OutputDir()).
		Msg("Configuration loaded")

	return cfg, nil
}

// Default returns the embedded defaults bound to the current directory
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		panic("invalid embedded defaults: " + err.Error())
	}
	cfg, err := unmarshal(k)
	if err != nil {
		panic("invalid embedded defaults: " + err.Error())
	}
	return cfg
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       trimSpaceHookFunc(),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	if err := postProcessConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// trimSpaceHookFunc trims surrounding whitespace from string values, which
// commonly sneaks in through .env files
func trimSpaceHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() == reflect.String && t.Kind() == reflect.String {
			return strings.TrimSpace(data.(string)), nil
		}
		return data, nil
	}
}

func nonEmpty(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for key, value := range m {
		if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
			continue
		}
		if value == nil {
			continue
		}
		out[key] = value
	}
	return out
}
