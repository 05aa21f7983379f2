package binding

import (
	"fmt"

	"github.com/bullish-design/templateer/pkg/errors"
	"github.com/bullish-design/templateer/pkg/registry"
)

// Entry describes a registered binding type
type Entry struct {
	// Name is the binding type name, e.g. GreetingTemplate
	Name string
	// Stub is the stem of the stub file declaring the type, e.g. greeting_model
	Stub string
	// New returns a fresh instance
	New func() Binding
}

// Construct calls New, turning a panic or a nil result into an INTERNAL error
func (e Entry) Construct() (b Binding, err error) {
	defer func() {
		if r := recover(); r != nil {
			b = nil
			err = errors.Newf(errors.ErrInternal, "constructor for %s panicked: %v", e.Name, r).
				WithDetail("binding", e.Name)
		}
	}()

	b = e.New()
	if b == nil {
		return nil, errors.Newf(errors.ErrInternal, "constructor for %s returned nil", e.Name).
			WithDetail("binding", e.Name)
	}
	return b, nil
}

// Registry holds binding entries by name
type Registry struct {
	entries registry.Registry[Entry]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{entries: registry.New[Entry]("binding")}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry that stubs register into
func Default() *Registry {
	return defaultRegistry
}

// Register adds an entry. Names must be unique.
func (r *Registry) Register(e Entry) error {
	if e.New == nil {
		return errors.Newf(errors.ErrInvalidInput, "binding %s has no constructor", e.Name)
	}
	if e.Stub == "" {
		return errors.Newf(errors.ErrInvalidInput, "binding %s has no stub", e.Name)
	}
	return r.entries.Register(e.Name, e)
}

// Get returns the entry registered under name
func (r *Registry) Get(name string) (Entry, error) {
	return r.entries.Get(name)
}

// Entries returns every entry sorted by name
func (r *Registry) Entries() []Entry {
	return r.entries.Values()
}

// ForStub returns the entries declared by the stub file with the given stem
func (r *Registry) ForStub(stub string) []Entry {
	return r.entries.Select(func(e Entry) bool { return e.Stub == stub })
}

// Count returns the number of entries
func (r *Registry) Count() int {
	return r.entries.Count()
}

// Register adds an entry to the default registry
func Register(e Entry) error {
	return defaultRegistry.Register(e)
}

// MustRegister adds a binding to the default registry and panics on
// failure. Generated stubs call it from init.
func MustRegister(stub, name string, ctor func() Binding) {
	if err := Register(Entry{Name: name, Stub: stub, New: ctor}); err != nil {
		panic(fmt.Sprintf("failed to register binding %s: %v", name, err))
	}
}
