package builtins

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/marmotlang/marmot/internal/config"
	"github.com/marmotlang/marmot/internal/dispatch"
	"github.com/marmotlang/marmot/internal/object"
	"github.com/marmotlang/marmot/internal/term"
)

func newTestRegistry() (*dispatch.Registry, *bytes.Buffer) {
	var buf bytes.Buffer
	reg := dispatch.NewRegistry()
	Register(reg, term.NewWriter(&buf))
	return reg, &buf
}

func TestPrintDefault(t *testing.T) {
	reg, buf := newTestRegistry()

	obj := object.NewTagged("dnaseq", &object.String{Value: "GATTACA"})
	result, err := reg.Dispatch(config.PrintGenericName, obj, object.TagOf(obj))
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if result != object.Object(obj) {
		t.Error("print should return its argument")
	}
	if got := buf.String(); got != "<dnaseq> \"GATTACA\"\n" {
		t.Errorf("printed %q", got)
	}
}

func TestSummaryNumericList(t *testing.T) {
	reg, _ := newTestRegistry()

	list := object.NewList([]object.Object{
		&object.Integer{Value: 1},
		&object.Integer{Value: 2},
		&object.Integer{Value: 3},
	})
	result, err := reg.Dispatch(config.SummaryGenericName, list, object.TagOf(list))
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	text := result.(*object.String).Value
	for _, part := range []string{"min 1", "median 2", "mean 2", "max 3"} {
		if !strings.Contains(text, part) {
			t.Errorf("summary %q missing %q", text, part)
		}
	}
}

func TestSummaryFallsBackToGeneric(t *testing.T) {
	reg, _ := newTestRegistry()

	obj := &object.String{Value: "hello"}
	result, err := reg.Dispatch(config.SummaryGenericName, obj, object.TagOf(obj))
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if s := result.(*object.String).Value; s != config.GenericSummaryText {
		t.Errorf("expected %q, got %q", config.GenericSummaryText, s)
	}
}

func TestSummaryNonNumericListErrors(t *testing.T) {
	reg, _ := newTestRegistry()

	list := object.NewList([]object.Object{&object.String{Value: "x"}})
	if _, err := reg.Dispatch(config.SummaryGenericName, list, object.TagOf(list)); err == nil {
		t.Error("expected an error for a non-numeric list")
	}
}

func TestLengthDefault(t *testing.T) {
	reg, _ := newTestRegistry()

	cases := []struct {
		obj  object.Object
		want int64
	}{
		{object.NewList([]object.Object{object.NIL, object.NIL}), 2},
		{&object.String{Value: "héllo"}, 5},
		{object.NewRecord(map[string]object.Object{"a": object.NIL}), 1},
	}
	for _, tc := range cases {
		result, err := reg.Dispatch(config.LengthGenericName, tc.obj, object.TagOf(tc.obj))
		if err != nil {
			t.Fatalf("Dispatch(%s): %v", tc.obj.Inspect(), err)
		}
		if n := result.(*object.Integer).Value; n != tc.want {
			t.Errorf("length(%s) = %d, expected %d", tc.obj.Inspect(), n, tc.want)
		}
	}

	if _, err := reg.Dispatch(config.LengthGenericName, &object.Integer{Value: 1}, object.TAG_INTEGER); err == nil {
		t.Error("scalars have no length")
	}
}

func TestLengthSequenceOverride(t *testing.T) {
	reg, _ := newTestRegistry()
	if err := reg.RegisterMethod(config.LengthGenericName, "dnaseq", lengthSequence); err != nil {
		t.Fatalf("RegisterMethod: %v", err)
	}

	dna := object.NewTagged("dnaseq", object.NewRecord(map[string]object.Object{
		"sequence": &object.String{Value: "GATTACAGATTAC"},
	}))
	result, err := reg.Dispatch(config.LengthGenericName, dna, object.TagOf(dna))
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if n := result.(*object.Integer).Value; n != 13 {
		t.Errorf("length = %d, expected 13", n)
	}
}

func TestLengthSequenceShapeMismatch(t *testing.T) {
	reg, _ := newTestRegistry()
	reg.RegisterMethod(config.LengthGenericName, "dnaseq", lengthSequence)

	// A value whose tag claims dnaseq but whose shape doesn't match:
	// dispatch succeeds, the failure happens inside the method.
	impostor := object.NewTagged("dnaseq", &object.Integer{Value: 42})
	_, err := reg.Dispatch(config.LengthGenericName, impostor, object.TagOf(impostor))
	if err == nil {
		t.Fatal("expected a downstream error from the method itself")
	}
	var noMethod *dispatch.NoApplicableMethodError
	if errors.As(err, &noMethod) {
		t.Error("failure should come from the method, not from dispatch")
	}
}

func TestPlotHasNoDefault(t *testing.T) {
	reg, _ := newTestRegistry()

	dna := object.NewTagged("dnaseq", object.NIL)
	_, err := reg.Dispatch(config.PlotGenericName, dna, object.TagOf(dna))
	var noMethod *dispatch.NoApplicableMethodError
	if !errors.As(err, &noMethod) {
		t.Fatalf("expected NoApplicableMethodError, got %v", err)
	}
}

func TestPlotNumeric(t *testing.T) {
	reg, buf := newTestRegistry()

	list := object.NewList([]object.Object{
		&object.Integer{Value: 1},
		&object.Integer{Value: 2},
	})
	_, err := reg.Dispatch(config.PlotGenericName, list, object.TagOf(list), &object.String{Value: "counts"})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "counts") || !strings.Contains(out, "#") {
		t.Errorf("plot output = %q", out)
	}
}

func TestCatalogCoversRegisteredImpls(t *testing.T) {
	var buf bytes.Buffer
	catalog := Catalog(term.NewWriter(&buf))
	for _, name := range []string{
		"print.any", "summary.generic", "summary.numeric",
		"length.count", "length.sequence", "plot.numeric",
	} {
		if _, ok := catalog[name]; !ok {
			t.Errorf("catalog missing %q", name)
		}
	}
}
