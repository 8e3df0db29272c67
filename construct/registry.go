package construct

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/treeform-format/go-treeform/debug"
	"github.com/treeform-format/go-treeform/ir"
)

// Func decodes a node selected by literal tag equality.
type Func func(b *Builder, node *ir.Node) (any, error)

// PrefixFunc decodes a node whose tag starts with a registered
// prefix; suffix is the tag remainder after the prefix.
type PrefixFunc func(b *Builder, suffix string, node *ir.Node) (any, error)

var ErrTagExists = errors.New("tag already registered")

// Registry maps exact tags and tag prefixes to decoders. Registration
// is expected to complete before the first construction call;
// registration calls are mutually exclusive, and steady-state lookups
// are read-only and safe for concurrent builders.
type Registry struct {
	mu     sync.RWMutex
	exact  map[string]Func
	prefix map[string]PrefixFunc
}

func NewRegistry() *Registry {
	return &Registry{
		exact:  map[string]Func{},
		prefix: map[string]PrefixFunc{},
	}
}

// Exact registers a decoder for a literal tag. Registering a tag
// twice fails fast and leaves the first registration intact. The
// empty tag is the universal exact fallback.
func (r *Registry) Exact(tag string, f Func) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, present := r.exact[tag]; present {
		return fmt.Errorf("exact %q: %w", tag, ErrTagExists)
	}
	if debug.Registry() {
		debug.Logf("register exact %q\n", tag)
	}
	r.exact[tag] = f
	return nil
}

// Prefix registers a decoder for all tags starting with p. The empty
// prefix is the universal prefix fallback, consulted only after every
// other prefix has failed to match.
func (r *Registry) Prefix(p string, f PrefixFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, present := r.prefix[p]; present {
		return fmt.Errorf("prefix %q: %w", p, ErrTagExists)
	}
	if debug.Registry() {
		debug.Logf("register prefix %q\n", p)
	}
	r.prefix[p] = f
	return nil
}

func (r *Registry) resolveExact(tag string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.exact[tag]
	return f, ok
}

// resolvePrefix returns the first registered prefix matching the
// start of tag, with the remainder. Ordering among overlapping
// prefixes follows map iteration and is unspecified; callers must not
// register overlapping prefixes and expect a priority.
func (r *Registry) resolvePrefix(tag string) (PrefixFunc, string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for p, f := range r.prefix {
		if p == "" {
			continue
		}
		if strings.HasPrefix(tag, p) {
			return f, tag[len(p):], true
		}
	}
	return nil, "", false
}

// fallback returns the universal prefix decoder, then the universal
// exact decoder, in that order of preference.
func (r *Registry) fallback() (PrefixFunc, Func) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.prefix[""], r.exact[""]
}

// Tags lists the registered exact tags, sorted.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]string, 0, len(r.exact))
	for t := range r.exact {
		res = append(res, t)
	}
	sort.Strings(res)
	return res
}

// Prefixes lists the registered tag prefixes, sorted.
func (r *Registry) Prefixes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]string, 0, len(r.prefix))
	for p := range r.prefix {
		res = append(res, p)
	}
	sort.Strings(res)
	return res
}
