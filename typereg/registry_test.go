package typereg

import (
	"errors"
	"testing"
)

func TestRegistry_RegisterOnce(t *testing.T) {
	r := New()
	f := func() any { return struct{}{} }
	if err := r.Register("thing", f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register("thing", f); !errors.Is(err, ErrTypeExists) {
		t.Fatalf("expected ErrTypeExists, got %v", err)
	}
	if _, ok := r.LookupFactory("thing"); !ok {
		t.Error("registered factory not found")
	}
	if _, ok := r.LookupFactory("absent"); ok {
		t.Error("lookup of absent type succeeded")
	}
}

type propRecorder struct {
	props map[string]any
}

func (p *propRecorder) SetProperty(name string, v any) error {
	if p.props == nil {
		p.props = map[string]any{}
	}
	p.props[name] = v
	return nil
}

func TestRegistry_SetProperty(t *testing.T) {
	r := New()
	rec := &propRecorder{}
	if err := r.SetProperty(rec, "Name", "x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.props["Name"] != "x" {
		t.Errorf("props = %v", rec.props)
	}
	if err := r.SetProperty(42, "Name", "x"); !errors.Is(err, ErrNoSetter) {
		t.Fatalf("expected ErrNoSetter, got %v", err)
	}
}

func TestSlice(t *testing.T) {
	s := &Slice{}
	s.Append("a")
	s.Append(nil)
	s.Replace(1, "b")
	if len(s.Items) != 2 || s.Items[0] != "a" || s.Items[1] != "b" {
		t.Errorf("items = %v", s.Items)
	}
}
