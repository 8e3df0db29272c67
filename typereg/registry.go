package typereg

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrTypeExists = errors.New("type exists")
	ErrNoSetter   = errors.New("instance does not accept properties")
)

// Registry is a map-based Types implementation. Factories are
// registered once at startup; instances handle property assignment by
// implementing PropertySetter.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func New() *Registry {
	return &Registry{factories: map[string]Factory{}}
}

func (r *Registry) Register(name string, f Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, present := r.factories[name]; present {
		return fmt.Errorf("%q: %w", name, ErrTypeExists)
	}
	r.factories[name] = f
	return nil
}

func (r *Registry) LookupFactory(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[name]
	return f, ok
}

func (r *Registry) SetProperty(instance any, property string, v any) error {
	ps, ok := instance.(PropertySetter)
	if !ok {
		return fmt.Errorf("%T: %w", instance, ErrNoSetter)
	}
	return ps.SetProperty(property, v)
}

// Slice is a ready-made host sequence container.
type Slice struct {
	Items []any
}

func (s *Slice) Append(v any) {
	s.Items = append(s.Items, v)
}

func (s *Slice) Replace(i int, v any) {
	s.Items[i] = v
}
