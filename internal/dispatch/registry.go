package dispatch

import (
	"sort"
	"sync"

	"github.com/marmotlang/marmot/internal/object"
)

// Impl is one implementation of a generic function. It receives the
// dispatched value plus any extra call arguments. Errors it returns
// propagate unchanged to the Dispatch caller.
type Impl func(obj object.Object, extra ...object.Object) (object.Object, error)

type generic struct {
	methods map[string]Impl
	deflt   Impl
}

// Registry maps (generic name, tag) to an implementation, with a
// per-generic default as fallback. Registration silently overwrites:
// the last method registered for a tag wins. A single lock guards
// registration and lookup; implementations run outside the lock so a
// method may itself dispatch.
type Registry struct {
	mu       sync.RWMutex
	generics map[string]*generic
}

func NewRegistry() *Registry {
	return &Registry{generics: make(map[string]*generic)}
}

// Declare registers an empty generic under name. Declaring an existing
// generic is a no-op; its methods are kept.
func (r *Registry) Declare(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.generics[name]; !ok {
		r.generics[name] = &generic{methods: make(map[string]Impl)}
	}
}

// RegisterMethod installs impl for tag under an already declared
// generic, replacing any previous method for that tag. Nothing checks
// that impl can handle values actually carrying the tag.
func (r *Registry) RegisterMethod(genericName, tag string, impl Impl) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.generics[genericName]
	if !ok {
		return &UnknownGenericError{Name: genericName}
	}
	g.methods[tag] = impl
	return nil
}

// RegisterDefault sets the fallback implementation for a generic,
// replacing any previous default.
func (r *Registry) RegisterDefault(genericName string, impl Impl) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.generics[genericName]
	if !ok {
		return &UnknownGenericError{Name: genericName}
	}
	g.deflt = impl
	return nil
}

// Dispatch resolves genericName for tag and invokes the winner with
// (obj, extra...). Resolution is exact tag match, then the default,
// then *NoApplicableMethodError. There is no tag chain and no
// inheritance: a tag either has a method or it doesn't.
func (r *Registry) Dispatch(genericName string, obj object.Object, tag string, extra ...object.Object) (object.Object, error) {
	impl, err := r.resolve(genericName, tag)
	if err != nil {
		return nil, err
	}
	return impl(obj, extra...)
}

func (r *Registry) resolve(genericName, tag string) (Impl, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.generics[genericName]
	if !ok {
		return nil, &UnknownGenericError{Name: genericName}
	}
	if impl, ok := g.methods[tag]; ok {
		return impl, nil
	}
	if g.deflt != nil {
		return g.deflt, nil
	}
	return nil, &NoApplicableMethodError{Generic: genericName, Tag: tag}
}

// Declared reports whether a generic exists.
func (r *Registry) Declared(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.generics[name]
	return ok
}

// HasMethod reports whether a generic has a method for exactly tag.
// The default does not count.
func (r *Registry) HasMethod(genericName, tag string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.generics[genericName]
	if !ok {
		return false
	}
	_, ok = g.methods[tag]
	return ok
}

// Generics returns the declared generic names, sorted.
func (r *Registry) Generics() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.generics))
	for name := range r.generics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Methods returns the tags with a method under a generic, sorted. The
// second result reports whether the generic also has a default.
func (r *Registry) Methods(genericName string) ([]string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.generics[genericName]
	if !ok {
		return nil, false
	}
	tags := make([]string, 0, len(g.methods))
	for tag := range g.methods {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags, g.deflt != nil
}
