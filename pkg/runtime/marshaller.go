package runtime

import (
	"fmt"
	"reflect"

	"github.com/marmotlang/marmot/internal/dispatch"
	"github.com/marmotlang/marmot/internal/object"
)

// Marshaller handles conversion between Go and runtime values.
type Marshaller struct{}

func NewMarshaller() *Marshaller {
	return &Marshaller{}
}

// ToValue converts a Go value to a runtime Object.
func (m *Marshaller) ToValue(val interface{}) (object.Object, error) {
	if val == nil {
		return object.NIL, nil
	}

	// Already an Object
	if obj, ok := val.(object.Object); ok {
		return obj, nil
	}

	v := reflect.ValueOf(val)
	if v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	if !v.IsValid() {
		return object.NIL, nil
	}

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &object.Integer{Value: v.Int()}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &object.Integer{Value: int64(v.Uint())}, nil
	case reflect.Float32, reflect.Float64:
		return &object.Float{Value: v.Float()}, nil
	case reflect.Bool:
		return &object.Boolean{Value: v.Bool()}, nil
	case reflect.String:
		return &object.String{Value: v.String()}, nil
	case reflect.Slice, reflect.Array:
		elements := make([]object.Object, v.Len())
		for i := 0; i < v.Len(); i++ {
			el, err := m.ToValue(v.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			elements[i] = el
		}
		return object.NewList(elements), nil
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("unsupported map key type %s", v.Type().Key())
		}
		fields := make(map[string]object.Object, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			fv, err := m.ToValue(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			fields[iter.Key().String()] = fv
		}
		return object.NewRecord(fields), nil
	case reflect.Struct:
		return m.structToRecord(v)
	case reflect.Ptr:
		if v.IsNil() {
			return object.NIL, nil
		}
		return m.ToValue(v.Elem().Interface())
	default:
		return nil, fmt.Errorf("unsupported Go type %s", v.Type())
	}
}

func (m *Marshaller) structToRecord(v reflect.Value) (object.Object, error) {
	t := v.Type()
	fields := make(map[string]object.Object, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		fv, err := m.ToValue(v.Field(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", sf.Name, err)
		}
		fields[sf.Name] = fv
	}
	return object.NewRecord(fields), nil
}

// FromValue converts a runtime Object to a Go value. targetType is
// optional; if provided, tries to convert to that type.
func (m *Marshaller) FromValue(obj object.Object, targetType reflect.Type) (interface{}, error) {
	if obj == nil {
		return nil, nil
	}

	if targetType != nil && targetType == reflect.TypeOf((*object.Object)(nil)).Elem() {
		return obj, nil
	}

	switch o := obj.(type) {
	case *object.Integer:
		if targetType != nil {
			switch targetType.Kind() {
			case reflect.Int:
				return int(o.Value), nil
			case reflect.Int64:
				return o.Value, nil
			case reflect.Float64:
				return float64(o.Value), nil
			}
		}
		return o.Value, nil
	case *object.Float:
		return o.Value, nil
	case *object.Boolean:
		return o.Value, nil
	case *object.String:
		return o.Value, nil
	case *object.List:
		out := make([]interface{}, len(o.Elements))
		for i, el := range o.Elements {
			v, err := m.FromValue(el, nil)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case *object.Record:
		out := make(map[string]interface{}, len(o.Fields))
		for _, f := range o.Fields {
			v, err := m.FromValue(f.Value, nil)
			if err != nil {
				return nil, err
			}
			out[f.Key] = v
		}
		return out, nil
	case *object.Tagged:
		return m.FromValue(o.Value, targetType)
	case *object.Nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported type for conversion: %s", o.Type())
	}
}

// Bind wraps a plain Go function as an Impl. fn's first parameter
// receives the dispatched value, the rest receive extra call
// arguments; an optional trailing error return propagates as the
// dispatch error.
func (r *Runtime) Bind(fn interface{}) (dispatch.Impl, error) {
	v := reflect.ValueOf(fn)
	t := v.Type()
	if t.Kind() != reflect.Func {
		return nil, fmt.Errorf("bind: expected a function, got %s", t)
	}
	if t.IsVariadic() {
		return nil, fmt.Errorf("bind: variadic functions are not supported")
	}
	if t.NumIn() == 0 {
		return nil, fmt.Errorf("bind: function must take the dispatched value as its first parameter")
	}
	errType := reflect.TypeOf((*error)(nil)).Elem()
	if t.NumOut() > 2 || (t.NumOut() == 2 && t.Out(1) != errType) {
		return nil, fmt.Errorf("bind: function must return (T), (T, error) or nothing")
	}

	m := r.marshaller
	return func(obj object.Object, extra ...object.Object) (object.Object, error) {
		args := append([]object.Object{obj}, extra...)
		if len(args) != t.NumIn() {
			return nil, fmt.Errorf("expected %d arguments, got %d", t.NumIn(), len(args))
		}
		in := make([]reflect.Value, len(args))
		for i, arg := range args {
			target := t.In(i)
			val, err := m.FromValue(arg, target)
			if err != nil {
				return nil, fmt.Errorf("argument %d conversion failed: %w", i, err)
			}
			if val == nil {
				in[i] = reflect.Zero(target)
				continue
			}
			rv := reflect.ValueOf(val)
			if rv.Type() != target && rv.Type().ConvertibleTo(target) {
				rv = rv.Convert(target)
			}
			in[i] = rv
		}

		results := v.Call(in)
		if t.NumOut() == 2 {
			if errVal := results[1]; !errVal.IsNil() {
				return nil, errVal.Interface().(error)
			}
		}
		if t.NumOut() == 0 {
			return object.NIL, nil
		}
		if t.Out(0) == errType {
			if !results[0].IsNil() {
				return nil, results[0].Interface().(error)
			}
			return object.NIL, nil
		}
		return m.ToValue(results[0].Interface())
	}, nil
}

// BindMethod registers a plain Go function as the method for
// (generic, tag).
func (r *Runtime) BindMethod(generic, tag string, fn interface{}) error {
	impl, err := r.Bind(fn)
	if err != nil {
		return err
	}
	return r.Registry.RegisterMethod(generic, tag, impl)
}

// BindDefault registers a plain Go function as the default for generic.
func (r *Runtime) BindDefault(generic string, fn interface{}) error {
	impl, err := r.Bind(fn)
	if err != nil {
		return err
	}
	return r.Registry.RegisterDefault(generic, impl)
}
