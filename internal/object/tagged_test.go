package object

import "testing"

func TestTagIsMutableWithoutValidation(t *testing.T) {
	rec := NewRecord(map[string]Object{
		"sequence": &String{Value: "GATTACAGATTAC"},
	})
	tagged := NewTagged("dnaseq", rec)

	if tagged.Tag() != "dnaseq" {
		t.Fatalf("tag = %q", tagged.Tag())
	}

	// Any string is accepted, including one whose methods expect a
	// completely different shape.
	tagged.SetTag("lm")
	if tagged.Tag() != "lm" {
		t.Errorf("tag after SetTag = %q", tagged.Tag())
	}
	if tagged.Value != rec {
		t.Error("retagging must not touch the wrapped value")
	}

	tagged.SetTag("")
	if tagged.Tag() != "" {
		t.Errorf("empty tag rejected: %q", tagged.Tag())
	}
}

func TestTagOf(t *testing.T) {
	cases := []struct {
		obj Object
		tag string
	}{
		{&Integer{Value: 1}, TAG_INTEGER},
		{&Float{Value: 1.5}, TAG_FLOAT},
		{TRUE, TAG_BOOLEAN},
		{&String{Value: "x"}, TAG_STRING},
		{NIL, TAG_NIL},
		{NewList(nil), TAG_LIST},
		{NewRecord(nil), TAG_RECORD},
		{NewTagged("dnaseq", NIL), "dnaseq"},
	}
	for _, tc := range cases {
		if got := TagOf(tc.obj); got != tc.tag {
			t.Errorf("TagOf(%s) = %q, expected %q", tc.obj.Inspect(), got, tc.tag)
		}
	}
}

func TestTaggedIdentity(t *testing.T) {
	a := NewTagged("point", &Integer{Value: 1})
	b := NewTagged("point", &Integer{Value: 1})
	if a.ID == b.ID {
		t.Error("distinct wrappers should have distinct identities")
	}
}

func TestTaggedInspect(t *testing.T) {
	tagged := NewTagged("dnaseq", &String{Value: "GATTACA"})
	if got := tagged.Inspect(); got != `<dnaseq> "GATTACA"` {
		t.Errorf("Inspect() = %s", got)
	}
}

func TestNewTaggedNilValue(t *testing.T) {
	tagged := NewTagged("x", nil)
	if tagged.Value != Object(NIL) {
		t.Errorf("nil value should become NIL, got %#v", tagged.Value)
	}
}
