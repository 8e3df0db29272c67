// Package reflectreg is a reflection-based implementation of the
// typereg.Types interface for Go structs. The construction engine
// itself stays reflection-free; applications that want zero-setup
// object construction register struct prototypes here and hand the
// registry to the builder.
package reflectreg

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"sync"

	"github.com/treeform-format/go-treeform/typereg"
	"github.com/treeform-format/go-treeform/value"
)

// Registry maps type names to struct types. Factories produce
// pointers to fresh zero values; properties are exported fields
// matched by name.
type Registry struct {
	mu    sync.RWMutex
	types map[string]reflect.Type
}

func New() *Registry {
	return &Registry{types: map[string]reflect.Type{}}
}

// Register binds name to the struct type of prototype, which may be a
// struct value or a pointer to one.
func (r *Registry) Register(name string, prototype any) error {
	t := reflect.TypeOf(prototype)
	if t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return fmt.Errorf("prototype for %q must be a struct, got %T", name, prototype)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, present := r.types[name]; present {
		return fmt.Errorf("%q: %w", name, typereg.ErrTypeExists)
	}
	r.types[name] = t
	return nil
}

func (r *Registry) LookupFactory(name string) (typereg.Factory, bool) {
	r.mu.RLock()
	t, ok := r.types[name]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return func() any {
		return reflect.New(t).Interface()
	}, true
}

func (r *Registry) SetProperty(instance any, property string, v any) error {
	rv := reflect.ValueOf(instance)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("instance must be a non-nil struct pointer, got %T", instance)
	}
	field := rv.Elem().FieldByName(property)
	if !field.IsValid() {
		return fmt.Errorf("unknown property %q on %s", property, rv.Elem().Type())
	}
	if !field.CanSet() {
		return fmt.Errorf("property %q on %s is not settable", property, rv.Elem().Type())
	}
	if err := assign(field, v); err != nil {
		return fmt.Errorf("property %q: %w", property, err)
	}
	return nil
}

// assign converts a decoded value to the field's type, checking
// narrowing conversions for overflow.
func assign(field reflect.Value, v any) error {
	if v == nil {
		field.Set(reflect.Zero(field.Type()))
		return nil
	}
	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(field.Type()) {
		field.Set(rv)
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		switch x := v.(type) {
		case string:
			field.SetString(x)
			return nil
		case value.Symbol:
			field.SetString(string(x))
			return nil
		}
	case reflect.Bool:
		if x, ok := v.(bool); ok {
			field.SetBool(x)
			return nil
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		x, err := toInt64(v)
		if err != nil {
			return err
		}
		if field.OverflowInt(x) {
			return fmt.Errorf("value %d overflows %s", x, field.Type())
		}
		field.SetInt(x)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		x, err := toInt64(v)
		if err != nil {
			return err
		}
		if x < 0 || field.OverflowUint(uint64(x)) {
			return fmt.Errorf("value %d overflows %s", x, field.Type())
		}
		field.SetUint(uint64(x))
		return nil
	case reflect.Float32, reflect.Float64:
		switch x := v.(type) {
		case float64:
			if field.Kind() == reflect.Float32 && !math.IsInf(x, 0) &&
				math.Abs(x) > math.MaxFloat32 {
				return fmt.Errorf("value %g overflows float32", x)
			}
			field.SetFloat(x)
			return nil
		case int64:
			field.SetFloat(float64(x))
			return nil
		}
	case reflect.Slice:
		if items, ok := v.([]any); ok {
			out := reflect.MakeSlice(field.Type(), len(items), len(items))
			for i, item := range items {
				if err := assign(out.Index(i), item); err != nil {
					return fmt.Errorf("element %d: %w", i, err)
				}
			}
			field.Set(out)
			return nil
		}
	case reflect.Map:
		if m, ok := v.(*value.Map); ok {
			out := reflect.MakeMapWithSize(field.Type(), m.Len())
			for _, e := range m.Entries() {
				mk := reflect.New(field.Type().Key()).Elem()
				if err := assign(mk, e.Key); err != nil {
					return fmt.Errorf("key %v: %w", e.Key, err)
				}
				mv := reflect.New(field.Type().Elem()).Elem()
				if err := assign(mv, e.Val); err != nil {
					return fmt.Errorf("key %v: %w", e.Key, err)
				}
				out.SetMapIndex(mk, mv)
			}
			field.Set(out)
			return nil
		}
	case reflect.Ptr:
		p := reflect.New(field.Type().Elem())
		if err := assign(p.Elem(), v); err != nil {
			return err
		}
		field.Set(p)
		return nil
	case reflect.Interface:
		if field.NumMethod() == 0 {
			field.Set(rv)
			return nil
		}
	}
	return fmt.Errorf("cannot assign %T to %s", v, field.Type())
}

func toInt64(v any) (int64, error) {
	switch x := v.(type) {
	case int64:
		return x, nil
	case *big.Int:
		if !x.IsInt64() {
			return 0, fmt.Errorf("value %s overflows int64", x)
		}
		return x.Int64(), nil
	default:
		return 0, fmt.Errorf("expected integer, got %T", v)
	}
}
