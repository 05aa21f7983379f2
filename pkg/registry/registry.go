package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/bullish-design/templateer/pkg/errors"
)

// Registry is a thread-safe store of items keyed by name. Registration
// usually happens from init functions, lookups from the passes.
type Registry[T any] interface {
	// Register adds an item; names are unique
	Register(name string, item T) error

	// Get retrieves an item
	Get(name string) (T, error)

	// List returns all registered names in sorted order
	List() []string

	// Values returns all items ordered by name
	Values() []T

	// Select returns the items, ordered by name, for which keep is true
	Select(keep func(T) bool) []T

	// Has checks if an item is registered
	Has(name string) bool

	// Count returns the number of registered items
	Count() int
}

type registry[T any] struct {
	kind  string
	mu    sync.RWMutex
	items map[string]T
}

// New creates an empty Registry. kind names the items in error messages,
// e.g. "binding" or "template".
func New[T any](kind string) Registry[T] {
	return &registry[T]{
		kind:  kind,
		items: make(map[string]T),
	}
}

func (r *registry[T]) Register(name string, item T) error {
	if name == "" {
		return errors.Newf(errors.ErrInvalidInput, "%s name cannot be empty", r.kind).
			WithDetail("kind", r.kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "%s '%s' is already registered", r.kind, name).
			WithDetail("kind", r.kind).
			WithDetail("name", name)
	}

	r.items[name] = item
	return nil
}

func (r *registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[name]
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "%s '%s' is not registered", r.kind, name).
			WithDetail("kind", r.kind).
			WithDetail("name", name)
	}
	return item, nil
}

func (r *registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames()
}

func (r *registry[T]) Values() []T {
	return r.Select(func(T) bool { return true })
}

func (r *registry[T]) Select(keep func(T) bool) []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []T
	for _, name := range r.sortedNames() {
		if item := r.items[name]; keep(item) {
			items = append(items, item)
		}
	}
	return items
}

// sortedNames expects the read lock to be held
func (r *registry[T]) sortedNames() []string {
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.items[name]
	return exists
}

func (r *registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// MustRegister registers an item and panics if registration fails.
// Meant for init functions, where a failure is a programming error.
func MustRegister[T any](reg Registry[T], name string, item T) {
	if err := reg.Register(name, item); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", name, err))
	}
}
