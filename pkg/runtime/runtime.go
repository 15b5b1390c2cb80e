// Package runtime is the embedding API: a Runtime bundles a dispatch
// registry, an environment of named values, and an output writer, with
// the builtin generics pre-registered.
package runtime

import (
	"io"
	"os"

	"github.com/marmotlang/marmot/internal/builtins"
	"github.com/marmotlang/marmot/internal/dispatch"
	"github.com/marmotlang/marmot/internal/manifest"
	"github.com/marmotlang/marmot/internal/object"
	"github.com/marmotlang/marmot/internal/term"
)

type Runtime struct {
	Registry *dispatch.Registry
	Env      *object.Environment

	out        *term.Writer
	marshaller *Marshaller
}

// New creates a Runtime writing to stdout.
func New() *Runtime {
	return NewWithOutput(os.Stdout)
}

// NewWithOutput creates a Runtime whose print and plot builtins write
// to out.
func NewWithOutput(out io.Writer) *Runtime {
	w := term.NewWriter(out)
	r := &Runtime{
		Registry:   dispatch.NewRegistry(),
		Env:        object.NewEnvironment(),
		out:        w,
		marshaller: NewMarshaller(),
	}
	builtins.Register(r.Registry, w)
	return r
}

func (r *Runtime) Out() *term.Writer { return r.out }

// Declare registers a generic function name. Idempotent.
func (r *Runtime) Declare(name string) {
	r.Registry.Declare(name)
}

// RegisterMethod installs impl for tag under generic. The previous
// method for that tag, if any, is silently replaced.
func (r *Runtime) RegisterMethod(generic, tag string, impl dispatch.Impl) error {
	return r.Registry.RegisterMethod(generic, tag, impl)
}

// RegisterDefault sets the fallback implementation for generic.
func (r *Runtime) RegisterDefault(generic string, impl dispatch.Impl) error {
	return r.Registry.RegisterDefault(generic, impl)
}

// Dispatch calls generic on obj, reading the dispatch tag from the
// object itself.
func (r *Runtime) Dispatch(generic string, obj object.Object, extra ...object.Object) (object.Object, error) {
	return r.Registry.Dispatch(generic, obj, object.TagOf(obj), extra...)
}

// DispatchTag calls generic on obj under an explicit tag, bypassing
// the object's own tag.
func (r *Runtime) DispatchTag(generic string, obj object.Object, tag string, extra ...object.Object) (object.Object, error) {
	return r.Registry.Dispatch(generic, obj, tag, extra...)
}

// Tag wraps value under tag and binds it to name in the environment.
func (r *Runtime) Tag(name, tag string, value object.Object) *object.Tagged {
	tagged := object.NewTagged(tag, value)
	r.Env.Set(name, tagged)
	return tagged
}

// LoadManifest applies a manifest file to this runtime. Impl names in
// the manifest resolve against the builtin catalog.
func (r *Runtime) LoadManifest(path string) error {
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}
	return m.Apply(r.Registry, r.Env, builtins.Catalog(r.out))
}
