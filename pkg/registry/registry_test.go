package registry

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bullish-design/templateer/pkg/errors"
)

type testItem struct {
	ID   int
	Name string
}

func TestRegister(t *testing.T) {
	reg := New[testItem]("item")
	assert.Equal(t, 0, reg.Count())

	t.Run("register valid item", func(t *testing.T) {
		require.NoError(t, reg.Register("item1", testItem{ID: 1, Name: "one"}))
		assert.Equal(t, 1, reg.Count())
		assert.True(t, reg.Has("item1"))
	})

	t.Run("register with empty name", func(t *testing.T) {
		err := reg.Register("", testItem{ID: 2})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("register duplicate", func(t *testing.T) {
		err := reg.Register("item1", testItem{ID: 3})
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
		assert.Contains(t, err.Error(), "item 'item1' is already registered")
	})
}

func TestGet(t *testing.T) {
	reg := New[testItem]("binding")
	require.NoError(t, reg.Register("a", testItem{ID: 1, Name: "a"}))

	got, err := reg.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "a", got.Name)

	_, err = reg.Get("missing")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Contains(t, err.Error(), "binding 'missing' is not registered")
}

func TestOrdering(t *testing.T) {
	reg := New[int]("n")
	for i, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, reg.Register(name, i))
	}

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, reg.List())
	assert.Equal(t, []int{1, 2, 0}, reg.Values())
	assert.Equal(t, []int{1, 0}, reg.Select(func(n int) bool { return n != 2 }))
	assert.Empty(t, reg.Select(func(int) bool { return false }))
}

func TestSelectByField(t *testing.T) {
	reg := New[testItem]("item")
	MustRegister(reg, "b", testItem{ID: 1, Name: "greeting_model"})
	MustRegister(reg, "a", testItem{ID: 2, Name: "greeting_model"})
	MustRegister(reg, "c", testItem{ID: 3, Name: "other_model"})

	got := reg.Select(func(it testItem) bool { return strings.HasPrefix(it.Name, "greeting") })
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, 1, got[1].ID)
}

func TestConcurrency(t *testing.T) {
	reg := New[int]("n")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = reg.Register(fmt.Sprintf("item%d", n), n)
			_ = reg.Has("item0")
			_ = reg.Values()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, reg.Count())
}

func TestMustRegister(t *testing.T) {
	reg := New[string]("s")
	MustRegister(reg, "one", "1")

	assert.Panics(t, func() {
		MustRegister(reg, "one", "again")
	})
}

func TestWithFunctions(t *testing.T) {
	reg := New[func() string]("template")
	MustRegister(reg, "greeting.Template", func() string { return "Hello {{ .name }}!" })

	fn, err := reg.Get("greeting.Template")
	require.NoError(t, err)
	assert.Equal(t, "Hello {{ .name }}!", fn())
}
