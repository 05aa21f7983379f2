package config

import (
	"bytes"

	"github.com/bullish-design/templateer/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

const configHeader = `# templateer project configuration.
# Paths are relative to the project root. MODEL_DIR and TEMPLATE_OUTPUT_DIR
# in the environment take precedence over the values below.

`

// Render serializes cfg as a project config file
func Render(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(configHeader)

	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return buf.Bytes(), nil
}
