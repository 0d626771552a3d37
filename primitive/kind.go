package primitive

import (
	"reflect"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum tags every literal data value. Literal kinds carry a concrete
// value, category kinds stand for a whole class of literals (the "boolean"
// category covers both true and false), container kinds hold other values.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindNull
	KindUndefined
	KindBool
	KindNumber
	KindString

	KindBoolean // category of all bool literals
	KindNumeric // category of all number literals
	KindText    // category of all string literals
	KindAny
	KindUnknown
	KindNever

	KindArray
	KindRecord

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var categoryNames = map[KindEnum]string{
	KindBoolean: "boolean",
	KindNumeric: "number",
	KindText:    "string",
	KindAny:     "any",
	KindUnknown: "unknown",
	KindNever:   "never",
}

func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

func (k KindEnum) IsCategory() bool {
	_, ok := categoryNames[k]
	return ok
}

func (k KindEnum) IsContainer() bool {
	switch k {
	default:
		return false
	case KindArray, KindRecord:
		return true
	}
}

// IsScalar reports whether values of this kind are never descended into by
// sequence operations. Records count as scalars: only arrays nest.
func (k KindEnum) IsScalar() bool {
	return k.IsValid() && k != KindArray
}

// IsKey reports whether a value of this kind may name a record field.
func (k KindEnum) IsKey() bool {
	return k == KindString
}

// CategoryName returns the notation name of a category kind, e.g. "boolean".
// It returns "" for non-category kinds.
func (k KindEnum) CategoryName() string {
	return categoryNames[k]
}

// CategoryFromName is the inverse of CategoryName.
func CategoryFromName(name string) (KindEnum, bool) {
	for k, n := range categoryNames {
		if n == name {
			return k, true
		}
	}

	return 0, false
}

// FromReflectType classifies a Go type by the literal kind its values map to.
// Named types are classified by their underlying kind. It returns 0 for
// types that have no literal representation (funcs, channels, pointers...).
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return KindNull
	}

	switch rtype.Kind() {
	default:
		return 0
	case reflect.Bool:
		return KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.String:
		return KindString
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Map, reflect.Struct:
		return KindRecord
	}
}
