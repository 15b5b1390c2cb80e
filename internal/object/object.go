package object

import "hash/fnv"

type ObjectType string

const (
	INTEGER_OBJ = "INTEGER"
	FLOAT_OBJ   = "FLOAT"
	BOOLEAN_OBJ = "BOOLEAN"
	STRING_OBJ  = "STRING"
	NIL_OBJ     = "NIL"
	LIST_OBJ    = "LIST"
	RECORD_OBJ  = "RECORD"
	TAGGED_OBJ  = "TAGGED"

	// Intrinsic tags. Values that are not wrapped in a Tagged dispatch
	// under these, so built-in operations go through the same registry
	// as user-defined ones.
	TAG_INTEGER = "integer"
	TAG_FLOAT   = "float"
	TAG_BOOLEAN = "boolean"
	TAG_STRING  = "string"
	TAG_NIL     = "nil"
	TAG_LIST    = "list"
	TAG_RECORD  = "record"
)

type Object interface {
	Type() ObjectType
	Inspect() string
	Hash() uint32
}

// TagOf returns the dispatch tag for a value: the mutable class tag for
// a *Tagged, the intrinsic tag otherwise. Every value is dispatchable;
// there is no fast path for built-in types.
func TagOf(obj Object) string {
	switch o := obj.(type) {
	case *Tagged:
		return o.Tag()
	case *Integer:
		return TAG_INTEGER
	case *Float:
		return TAG_FLOAT
	case *Boolean:
		return TAG_BOOLEAN
	case *String:
		return TAG_STRING
	case *Nil:
		return TAG_NIL
	case *List:
		return TAG_LIST
	case *Record:
		return TAG_RECORD
	default:
		return string(obj.Type())
	}
}

// Helper for hashing strings
func hashString(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}
