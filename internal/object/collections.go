package object

import (
	"sort"
	"strings"
)

// List is an ordered sequence of values.
type List struct {
	Elements []Object
}

func NewList(elements []Object) *List {
	return &List{Elements: elements}
}

func (l *List) Type() ObjectType { return LIST_OBJ }
func (l *List) Inspect() string {
	var out strings.Builder
	out.WriteString("[")
	for i, el := range l.Elements {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(el.Inspect())
	}
	out.WriteString("]")
	return out.String()
}
func (l *List) Hash() uint32 {
	var h uint32 = 2166136261
	for _, el := range l.Elements {
		h = h*16777619 ^ el.Hash()
	}
	return h
}

func (l *List) Len() int { return len(l.Elements) }

// Floats extracts the elements as float64s. Returns false if any
// element is not numeric.
func (l *List) Floats() ([]float64, bool) {
	out := make([]float64, len(l.Elements))
	for i, el := range l.Elements {
		switch v := el.(type) {
		case *Integer:
			out[i] = float64(v.Value)
		case *Float:
			out[i] = v.Value
		default:
			return nil, false
		}
	}
	return out, true
}

// RecordField is a single field in a Record.
type RecordField struct {
	Key   string
	Value Object
}

// Record is a set of named fields, kept sorted by key.
type Record struct {
	Fields []RecordField
}

// NewRecord creates a Record from a map of fields.
func NewRecord(fieldMap map[string]Object) *Record {
	fields := make([]RecordField, 0, len(fieldMap))
	for k, v := range fieldMap {
		fields = append(fields, RecordField{Key: k, Value: v})
	}
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Key < fields[j].Key
	})
	return &Record{Fields: fields}
}

// Get returns the value for a key, or nil if not found.
func (r *Record) Get(key string) Object {
	idx := sort.Search(len(r.Fields), func(i int) bool {
		return r.Fields[i].Key >= key
	})
	if idx < len(r.Fields) && r.Fields[idx].Key == key {
		return r.Fields[idx].Value
	}
	return nil
}

// Set updates the value for a key in place, or inserts it if absent.
func (r *Record) Set(key string, val Object) {
	idx := sort.Search(len(r.Fields), func(i int) bool {
		return r.Fields[i].Key >= key
	})
	if idx < len(r.Fields) && r.Fields[idx].Key == key {
		r.Fields[idx].Value = val
		return
	}
	r.Fields = append(r.Fields, RecordField{})
	copy(r.Fields[idx+1:], r.Fields[idx:])
	r.Fields[idx] = RecordField{Key: key, Value: val}
}

func (r *Record) Type() ObjectType { return RECORD_OBJ }
func (r *Record) Inspect() string {
	var out strings.Builder
	out.WriteString("{")
	for i, f := range r.Fields {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(f.Key)
		out.WriteString(": ")
		out.WriteString(f.Value.Inspect())
	}
	out.WriteString("}")
	return out.String()
}
func (r *Record) Hash() uint32 {
	var h uint32 = 2166136261
	for _, f := range r.Fields {
		h = h*16777619 ^ hashString(f.Key)
		h = h*16777619 ^ f.Value.Hash()
	}
	return h
}
