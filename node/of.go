package node

import (
	"errors"
	"fmt"
	"reflect"
	"sort"

	"seq-rebuild/primitive"
)

// ErrInvalidValue marks inputs rejected before an operation runs.
var ErrInvalidValue = errors.New("invalid value")

// Of converts a Go value into a Value:
//   - nil -> null, bool -> bool, any integer or float -> number, string -> string
//   - slices and arrays -> array
//   - maps with string keys -> record with keys in sorted order
//   - structs -> record of exported fields in declaration order
//   - Value and []Value are taken as they are
//
// Named types convert by their underlying kind. Pointers are followed; a nil
// pointer converts to null.
func Of(x any) (Value, error) {
	switch t := x.(type) {
	case Value:
		return t, nil
	case []Value:
		return Array(t...), nil
	case primitive.KindEnum:
		if t.IsCategory() {
			return Category(t), nil
		}
	}

	return ofReflect(reflect.ValueOf(x), "")
}

// MustOf is like Of but panics on error. It is meant for literals in tests and examples.
func MustOf(x any) Value {
	v, err := Of(x)
	if err != nil {
		panic(err)
	}

	return v
}

// Values converts each argument with MustOf.
func Values(xs ...any) []Value {
	out := make([]Value, len(xs))
	for i, x := range xs {
		out[i] = MustOf(x)
	}

	return out
}

var valueType = reflect.TypeFor[Value]()

func ofReflect(rv reflect.Value, path string) (Value, error) {
	if !rv.IsValid() {
		return Null(), nil
	}

	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return Null(), nil
		}
		rv = rv.Elem()
	}

	if rv.Type() == valueType {
		return rv.Interface().(Value), nil
	}

	switch primitive.FromReflectType(rv.Type()) {
	case primitive.KindBool:
		return Bool(rv.Bool()), nil
	case primitive.KindNumber:
		return Number(toFloat(rv)), nil
	case primitive.KindString:
		return String(rv.String()), nil
	case primitive.KindArray:
		elems := make([]Value, rv.Len())
		for i := range elems {
			e, err := ofReflect(rv.Index(i), fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return Value{}, err
			}
			elems[i] = e
		}
		return Value{kind: primitive.KindArray, elems: elems}, nil
	case primitive.KindRecord:
		if rv.Kind() == reflect.Map {
			return ofMap(rv, path)
		}
		return ofStruct(rv, path)
	default:
		return Value{}, fmt.Errorf("%w: %s: unsupported Go type %s", ErrInvalidValue, pathOrRoot(path), rv.Type())
	}
}

func ofMap(rv reflect.Value, path string) (Value, error) {
	if rv.Type().Key().Kind() != reflect.String {
		return Value{}, fmt.Errorf("%w: %s: record keys must be strings, got %s",
			ErrInvalidValue, pathOrRoot(path), rv.Type().Key())
	}

	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })

	fields := make([]Field, 0, len(keys))
	for _, k := range keys {
		fv, err := ofReflect(rv.MapIndex(k), path+"."+k.String())
		if err != nil {
			return Value{}, err
		}
		fields = append(fields, Field{Key: k.String(), Value: fv})
	}

	return Value{kind: primitive.KindRecord, fields: fields}, nil
}

func ofStruct(rv reflect.Value, path string) (Value, error) {
	rt := rv.Type()
	fields := make([]Field, 0, rt.NumField())

	for i := range rt.NumField() {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fv, err := ofReflect(rv.Field(i), path+"."+sf.Name)
		if err != nil {
			return Value{}, err
		}
		fields = append(fields, Field{Key: sf.Name, Value: fv})
	}

	return Value{kind: primitive.KindRecord, fields: fields}, nil
}

func toFloat(rv reflect.Value) float64 {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint())
	default:
		return rv.Float()
	}
}

func pathOrRoot(path string) string {
	if path == "" {
		return "<root>"
	}

	return path
}
