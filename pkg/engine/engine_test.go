package engine

import (
	"testing"

	"github.com/bullish-design/templateer/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	e := New("{{", "}}")

	tests := []struct {
		name string
		text string
		data map[string]any
		want string
	}{
		{"literal", "hello world", nil, "hello world"},
		{"single variable", "Hello {{ .name }}!", map[string]any{"name": "Ada"}, "Hello Ada!"},
		{"nil value", "{{ .name }}", map[string]any{"name": nil}, "<no value>"},
		{"funcs", "{{ .fn | snake }} {{ .type | camel }}", map[string]any{"fn": "DoThing", "type": "http-server"}, "do_thing HttpServer"},
		{"indent", "{{ .body | indent 4 }}", map[string]any{"body": "a\n\nb"}, "    a\n\n    b"},
		{"default", `{{ default "pass" .body }}`, map[string]any{"body": ""}, "pass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Render(tt.name, tt.text, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_MissingKeyIsError(t *testing.T) {
	e := New("{{", "}}")

	out, err := e.Render("greeting", "Hello {{ .name }}!", map[string]any{})
	require.Error(t, err)
	assert.Empty(t, out)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRender))
}

func TestCompile_ParseError(t *testing.T) {
	e := New("{{", "}}")

	_, err := e.Compile("broken", "{{ if .x }}unterminated")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrParse))
	assert.Equal(t, "broken", errors.GetErrorDetails(err)["template"])
}

func TestCustomDelims(t *testing.T) {
	e := New("[[", "]]")

	got, err := e.Render("delims", "{{ keep }} [[ .name ]]", map[string]any{"name": "Ada"})
	require.NoError(t, err)
	assert.Equal(t, "{{ keep }} Ada", got)
}

func TestCaseHelpers(t *testing.T) {
	assert.Equal(t, "SimpleClassTemplate", Camel("simple_class_template"))
	assert.Equal(t, "CliEntrypoint", Camel("cli-entrypoint"))
	assert.Equal(t, "HTTPServer", Camel("HTTPServer"))
	assert.Equal(t, "http_server", Snake("HTTPServer"))
	assert.Equal(t, "user_name", Snake("userName"))
}

func TestJoin(t *testing.T) {
	got, err := join(", ", []any{"a", 1})
	require.NoError(t, err)
	assert.Equal(t, "a, 1", got)

	_, err = join(", ", 42)
	assert.Error(t, err)
}
