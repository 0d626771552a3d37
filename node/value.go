// Package node models literal data descriptions: a tagged union of literal
// values (null, undefined, booleans, numbers, strings), type categories
// (boolean, number, string, any, unknown, never) and the two containers,
// arrays and ordered records.
//
// Values are immutable. Constructors copy their inputs and accessors return
// copies, so a Value can be shared freely between goroutines.
package node

import (
	"math"
	"strconv"
	"strings"

	"seq-rebuild/primitive"
)

// Value is one literal data description. The zero Value is invalid.
type Value struct {
	kind   primitive.KindEnum
	num    float64
	str    string
	b      bool
	elems  []Value
	fields []Field
}

// Field is a single record entry.
type Field struct {
	Key   string
	Value Value
}

// F builds a Field.
func F(key string, v Value) Field {
	return Field{Key: key, Value: v}
}

func Null() Value      { return Value{kind: primitive.KindNull} }
func Undefined() Value { return Value{kind: primitive.KindUndefined} }

func Bool(b bool) Value { return Value{kind: primitive.KindBool, b: b} }

func Number(f float64) Value { return Value{kind: primitive.KindNumber, num: f} }

func Int(i int) Value { return Number(float64(i)) }

func String(s string) Value { return Value{kind: primitive.KindString, str: s} }

// Category returns the category value of the given kind, e.g. Category(primitive.KindBoolean).
// It panics when kind is not a category kind.
func Category(kind primitive.KindEnum) Value {
	if !kind.IsCategory() {
		panic("node: not a category kind: " + kind.String())
	}

	return Value{kind: kind}
}

// Array builds an array value holding a copy of elems.
func Array(elems ...Value) Value {
	cp := make([]Value, len(elems))
	copy(cp, elems)

	return Value{kind: primitive.KindArray, elems: cp}
}

// Record builds a record value with fields in the given order.
// Duplicate keys are kept as given and reported by Validate.
func Record(fields ...Field) Value {
	cp := make([]Field, len(fields))
	copy(cp, fields)

	return Value{kind: primitive.KindRecord, fields: cp}
}

// Kind returns the tag of v.
func (v Value) Kind() primitive.KindEnum { return v.kind }

// IsValid reports whether v carries a known kind.
func (v Value) IsValid() bool { return v.kind.IsValid() }

func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == primitive.KindBool
}

func (v Value) AsNumber() (float64, bool) {
	return v.num, v.kind == primitive.KindNumber
}

func (v Value) AsString() (string, bool) {
	return v.str, v.kind == primitive.KindString
}

// Len returns the number of elements of an array or fields of a record, 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case primitive.KindArray:
		return len(v.elems)
	case primitive.KindRecord:
		return len(v.fields)
	default:
		return 0
	}
}

// Elems returns a copy of the array elements, nil for non-arrays.
func (v Value) Elems() []Value {
	if v.kind != primitive.KindArray {
		return nil
	}

	cp := make([]Value, len(v.elems))
	copy(cp, v.elems)

	return cp
}

// Index returns the i-th array element. It panics when v is not an array
// or i is out of range.
func (v Value) Index(i int) Value {
	if v.kind != primitive.KindArray {
		panic("node: Index of non-array " + v.kind.String())
	}

	return v.elems[i]
}

// Fields returns a copy of the record fields in order, nil for non-records.
func (v Value) Fields() []Field {
	if v.kind != primitive.KindRecord {
		return nil
	}

	cp := make([]Field, len(v.fields))
	copy(cp, v.fields)

	return cp
}

// Get returns the first field named key of a record.
func (v Value) Get(key string) (Value, bool) {
	for _, f := range v.fields {
		if f.Key == key {
			return f.Value, true
		}
	}

	return Value{}, false
}

// String renders v in a compact literal notation:
//
//	[1, "a", [true], {k: boolean}]
func (v Value) String() string {
	var sb strings.Builder
	v.write(&sb)

	return sb.String()
}

func (v Value) write(sb *strings.Builder) {
	switch v.kind {
	case primitive.KindNull:
		sb.WriteString("null")
	case primitive.KindUndefined:
		sb.WriteString("undefined")
	case primitive.KindBool:
		sb.WriteString(strconv.FormatBool(v.b))
	case primitive.KindNumber:
		sb.WriteString(formatNumber(v.num))
	case primitive.KindString:
		sb.WriteString(strconv.Quote(v.str))
	case primitive.KindArray:
		sb.WriteByte('[')
		for i, e := range v.elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			e.write(sb)
		}
		sb.WriteByte(']')
	case primitive.KindRecord:
		sb.WriteByte('{')
		for i, f := range v.fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(f.Key)
			sb.WriteString(": ")
			f.Value.write(sb)
		}
		sb.WriteByte('}')
	default:
		if name := v.kind.CategoryName(); name != "" {
			sb.WriteString(name)
			return
		}
		sb.WriteString("<invalid>")
	}
}

func formatNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}
