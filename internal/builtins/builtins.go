// Package builtins provides the stock generics every runtime starts
// with: print, summary, length and plot. They dispatch through the
// same registry as user-defined generics.
package builtins

import (
	"fmt"

	"github.com/marmotlang/marmot/internal/config"
	"github.com/marmotlang/marmot/internal/dispatch"
	"github.com/marmotlang/marmot/internal/object"
	"github.com/marmotlang/marmot/internal/stats"
	"github.com/marmotlang/marmot/internal/term"
)

// Register declares the builtin generics on reg and installs their
// methods and defaults. plot deliberately gets no default: plotting a
// value nobody taught the runtime to plot is a dispatch failure.
func Register(reg *dispatch.Registry, out *term.Writer) {
	reg.Declare(config.PrintGenericName)
	reg.Declare(config.SummaryGenericName)
	reg.Declare(config.LengthGenericName)
	reg.Declare(config.PlotGenericName)

	reg.RegisterDefault(config.PrintGenericName, printAny(out))
	reg.RegisterDefault(config.SummaryGenericName, summaryGeneric)
	reg.RegisterMethod(config.SummaryGenericName, object.TAG_LIST, summaryNumeric)
	reg.RegisterDefault(config.LengthGenericName, lengthCount)
	reg.RegisterMethod(config.PlotGenericName, object.TAG_LIST, plotNumeric(out))
}

// Catalog returns the builtin implementations by name, for binding
// from a manifest.
func Catalog(out *term.Writer) map[string]dispatch.Impl {
	return map[string]dispatch.Impl{
		"print.any":       printAny(out),
		"summary.generic": summaryGeneric,
		"summary.numeric": summaryNumeric,
		"length.count":    lengthCount,
		"length.sequence": lengthSequence,
		"plot.numeric":    plotNumeric(out),
	}
}

// underlying strips a Tagged wrapper, if any.
func underlying(obj object.Object) object.Object {
	if t, ok := obj.(*object.Tagged); ok {
		return t.Value
	}
	return obj
}

func printAny(out *term.Writer) dispatch.Impl {
	return func(obj object.Object, extra ...object.Object) (object.Object, error) {
		out.Println(obj.Inspect())
		return obj, nil
	}
}

func summaryGeneric(obj object.Object, extra ...object.Object) (object.Object, error) {
	return &object.String{Value: config.GenericSummaryText}, nil
}

func summaryNumeric(obj object.Object, extra ...object.Object) (object.Object, error) {
	list, ok := underlying(obj).(*object.List)
	if !ok {
		return nil, fmt.Errorf("summary: expected a list, got %s", obj.Type())
	}
	xs, ok := list.Floats()
	if !ok {
		return nil, fmt.Errorf("summary: list contains non-numeric elements")
	}
	if len(xs) == 0 {
		return nil, fmt.Errorf("summary: empty list")
	}
	s := stats.Summarize(xs)
	text := fmt.Sprintf("min %g  1st-qu %g  median %g  mean %g  3rd-qu %g  max %g",
		s.Min, s.Q1, s.Median, s.Mean, s.Q3, s.Max)
	return &object.String{Value: text}, nil
}

func lengthCount(obj object.Object, extra ...object.Object) (object.Object, error) {
	switch v := underlying(obj).(type) {
	case *object.List:
		return &object.Integer{Value: int64(v.Len())}, nil
	case *object.Record:
		return &object.Integer{Value: int64(len(v.Fields))}, nil
	case *object.String:
		return &object.Integer{Value: int64(len([]rune(v.Value)))}, nil
	default:
		return nil, fmt.Errorf("length: value of type %s has no length", v.Type())
	}
}

// lengthSequence counts the characters of a record's "sequence" field.
// It assumes the shape without checking the tag first, so a value
// mislabeled with a sequence-bearing tag fails here, not at dispatch.
func lengthSequence(obj object.Object, extra ...object.Object) (object.Object, error) {
	rec, ok := underlying(obj).(*object.Record)
	if !ok {
		return nil, fmt.Errorf("length: expected a record with a sequence field, got %s", obj.Type())
	}
	field := rec.Get("sequence")
	if field == nil {
		return nil, fmt.Errorf("length: record has no sequence field")
	}
	seq, ok := field.(*object.String)
	if !ok {
		return nil, fmt.Errorf("length: sequence field is %s, not a string", field.Type())
	}
	return &object.Integer{Value: int64(len([]rune(seq.Value)))}, nil
}

func plotNumeric(out *term.Writer) dispatch.Impl {
	return func(obj object.Object, extra ...object.Object) (object.Object, error) {
		list, ok := underlying(obj).(*object.List)
		if !ok {
			return nil, fmt.Errorf("plot: expected a list, got %s", obj.Type())
		}
		xs, ok := list.Floats()
		if !ok {
			return nil, fmt.Errorf("plot: list contains non-numeric elements")
		}
		title := ""
		if len(extra) > 0 {
			if s, ok := underlying(extra[0]).(*object.String); ok {
				title = s.Value
			}
		}
		out.BarChart(title, nil, xs)
		return object.NIL, nil
	}
}
