package binding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bullish-design/templateer/pkg/binding"
	"github.com/bullish-design/templateer/pkg/errors"
)

func newFixture() binding.Binding {
	return &fieldsFixture{Base: binding.Base{Template: "x.Template"}}
}

func TestRegistry(t *testing.T) {
	r := binding.NewRegistry()

	require.NoError(t, r.Register(binding.Entry{Name: "BTemplate", Stub: "b_model", New: newFixture}))
	require.NoError(t, r.Register(binding.Entry{Name: "ATemplate", Stub: "a_model", New: newFixture}))
	require.NoError(t, r.Register(binding.Entry{Name: "AltTemplate", Stub: "a_model", New: newFixture}))

	entries := r.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "ATemplate", entries[0].Name)
	assert.Equal(t, "AltTemplate", entries[1].Name)
	assert.Equal(t, "BTemplate", entries[2].Name)
	assert.Equal(t, 3, r.Count())

	assert.Len(t, r.ForStub("a_model"), 2)
	assert.Len(t, r.ForStub("b_model"), 1)
	assert.Empty(t, r.ForStub("c_model"))

	e, err := r.Get("BTemplate")
	require.NoError(t, err)
	assert.Equal(t, "x.Template", e.New().TemplateRef())
}

func TestRegistry_Rejects(t *testing.T) {
	r := binding.NewRegistry()
	require.NoError(t, r.Register(binding.Entry{Name: "ATemplate", Stub: "a_model", New: newFixture}))

	err := r.Register(binding.Entry{Name: "ATemplate", Stub: "a_model", New: newFixture})
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

	err = r.Register(binding.Entry{Name: "NoCtor", Stub: "a_model"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	err = r.Register(binding.Entry{Name: "NoStub", New: newFixture})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	err = r.Register(binding.Entry{Stub: "a_model", New: newFixture})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = r.Get("Missing")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestMustRegister(t *testing.T) {
	binding.MustRegister("must_register_model", "MustRegisterTemplate", newFixture)
	assert.Len(t, binding.Default().ForStub("must_register_model"), 1)

	assert.Panics(t, func() {
		binding.MustRegister("must_register_model", "MustRegisterTemplate", newFixture)
	})
}

func TestEntryConstruct(t *testing.T) {
	b, err := binding.Entry{Name: "ATemplate", New: newFixture}.Construct()
	require.NoError(t, err)
	assert.Equal(t, "x.Template", b.TemplateRef())

	_, err = binding.Entry{Name: "NilTemplate", New: func() binding.Binding { return nil }}.Construct()
	assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))
	assert.Contains(t, err.Error(), "returned nil")

	b, err = binding.Entry{Name: "PanicTemplate", New: func() binding.Binding { panic("boom") }}.Construct()
	assert.Nil(t, b)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))
	assert.Contains(t, err.Error(), "boom")
}
