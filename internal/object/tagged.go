package object

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Tagged wraps a value with a mutable class tag. The tag is a single
// string chosen by the caller and carries no guarantee that the wrapped
// value has the shape a method registered under that tag expects.
// Reassigning the tag never touches the value.
type Tagged struct {
	ID    uuid.UUID
	Value Object

	mu  sync.RWMutex
	tag string
}

// NewTagged wraps value under tag. The wrapper gets a fresh identity so
// the console can tell two structurally equal values apart.
func NewTagged(tag string, value Object) *Tagged {
	if value == nil {
		value = NIL
	}
	return &Tagged{
		ID:    uuid.New(),
		Value: value,
		tag:   tag,
	}
}

func (t *Tagged) Tag() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tag
}

// SetTag reassigns the class tag. Any string is accepted, including one
// whose registered methods assume a completely different value shape;
// the mismatch surfaces later, inside whichever method trips over it.
func (t *Tagged) SetTag(tag string) {
	t.mu.Lock()
	t.tag = tag
	t.mu.Unlock()
}

// Untag returns the wrapped value, discarding the tag.
func (t *Tagged) Untag() Object { return t.Value }

func (t *Tagged) Type() ObjectType { return TAGGED_OBJ }
func (t *Tagged) Inspect() string {
	return fmt.Sprintf("<%s> %s", t.Tag(), t.Value.Inspect())
}
func (t *Tagged) Hash() uint32 {
	return hashString(t.Tag()) ^ t.Value.Hash()
}
