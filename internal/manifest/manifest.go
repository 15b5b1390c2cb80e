// Package manifest loads a YAML description of generics, method
// bindings and sample objects, and replays it into a registry.
package manifest

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/marmotlang/marmot/internal/dispatch"
	"github.com/marmotlang/marmot/internal/object"
)

// Manifest is the top-level document.
type Manifest struct {
	Generics []GenericSpec `yaml:"generics"`
	Objects  []ObjectSpec  `yaml:"objects"`
}

// GenericSpec declares one generic with its bindings. Default and
// method impls are referenced by catalog name.
type GenericSpec struct {
	Name    string       `yaml:"name"`
	Default string       `yaml:"default,omitempty"`
	Methods []MethodSpec `yaml:"methods,omitempty"`
}

type MethodSpec struct {
	Tag  string `yaml:"tag"`
	Impl string `yaml:"impl"`
}

// ObjectSpec binds a name to a tagged value. The value is arbitrary
// YAML; its shape is never checked against the tag.
type ObjectSpec struct {
	Name  string    `yaml:"name"`
	Tag   string    `yaml:"tag"`
	Value yaml.Node `yaml:"value"`
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	return Parse(data)
}

// Parse parses manifest YAML and validates its shape. Impl references
// are resolved later, against the catalog given to Apply.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("manifest: YAML parse error: %v", err)
	}
	seen := make(map[string]bool)
	for _, g := range m.Generics {
		if g.Name == "" {
			return nil, fmt.Errorf("manifest: generic with empty name")
		}
		if seen[g.Name] {
			return nil, fmt.Errorf("manifest: generic %q declared twice", g.Name)
		}
		seen[g.Name] = true
		for _, ms := range g.Methods {
			if ms.Tag == "" || ms.Impl == "" {
				return nil, fmt.Errorf("manifest: generic %q has a method missing tag or impl", g.Name)
			}
		}
	}
	for _, o := range m.Objects {
		if o.Name == "" || o.Tag == "" {
			return nil, fmt.Errorf("manifest: object missing name or tag")
		}
	}
	return &m, nil
}

// Apply declares the manifest's generics on reg, installs bindings
// resolved through catalog, and sets sample objects in env. Bindings
// whose impl name is not in the catalog are an error; registry errors
// surface unchanged.
func (m *Manifest) Apply(reg *dispatch.Registry, env *object.Environment, catalog map[string]dispatch.Impl) error {
	for _, g := range m.Generics {
		reg.Declare(g.Name)
	}
	for _, g := range m.Generics {
		if g.Default != "" {
			impl, ok := catalog[g.Default]
			if !ok {
				return fmt.Errorf("manifest: generic %q: unknown impl %q", g.Name, g.Default)
			}
			if err := reg.RegisterDefault(g.Name, impl); err != nil {
				return err
			}
		}
		for _, ms := range g.Methods {
			impl, ok := catalog[ms.Impl]
			if !ok {
				return fmt.Errorf("manifest: generic %q: unknown impl %q", g.Name, ms.Impl)
			}
			if err := reg.RegisterMethod(g.Name, ms.Tag, impl); err != nil {
				return err
			}
			log.Debug().
				Str("generic", g.Name).
				Str("tag", ms.Tag).
				Str("impl", ms.Impl).
				Msg("registered method")
		}
	}
	for _, o := range m.Objects {
		val, err := decodeValue(&o.Value)
		if err != nil {
			return fmt.Errorf("manifest: object %q: %w", o.Name, err)
		}
		env.Set(o.Name, object.NewTagged(o.Tag, val))
		log.Debug().Str("object", o.Name).Str("tag", o.Tag).Msg("bound object")
	}
	return nil
}
