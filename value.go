package groupcfg

import (
	"fmt"
	"sort"
	"strconv"
)

// Kind identifies the scalar type carried by a Value.
type Kind uint8

const (
	// KindNone represents an unset value. It is compatible with every
	// concrete kind.
	KindNone Kind = iota
	// KindInt represents an integer value.
	KindInt
	// KindFloat represents a floating-point value.
	KindFloat
	// KindString represents a string value.
	KindString
	// KindBool represents a boolean value.
	KindBool
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInt:
		return "integer"
	case KindFloat:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "boolean"
	default:
		return "unknown"
	}
}

// Value is a tagged scalar: exactly one of the concrete kinds, or None.
// The zero Value is None.
type Value struct {
	kind Kind
	i    int
	f    float64
	s    string
	b    bool
}

// None returns the unset value.
func None() Value { return Value{} }

// Int wraps an integer.
func Int(v int) Value { return Value{kind: KindInt, i: v} }

// Float wraps a floating-point number.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// String wraps a string.
func String(v string) Value { return Value{kind: KindString, s: v} }

// Bool wraps a boolean.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// ValueOf wraps a plain Go scalar in a Value. Supported inputs are nil, the
// integer types, float32/float64, string, bool, and Value itself. Anything
// else (slices, maps, structs) fails with ErrTypeMismatch.
func ValueOf(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return None(), nil
	case Value:
		return t, nil
	case int:
		return Int(t), nil
	case int8:
		return Int(int(t)), nil
	case int16:
		return Int(int(t)), nil
	case int32:
		return Int(int(t)), nil
	case int64:
		return Int(int(t)), nil
	case uint:
		return Int(int(t)), nil
	case uint8:
		return Int(int(t)), nil
	case uint16:
		return Int(int(t)), nil
	case uint32:
		return Int(int(t)), nil
	case uint64:
		return Int(int(t)), nil
	case float32:
		return Float(float64(t)), nil
	case float64:
		return Float(t), nil
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	default:
		return None(), fmt.Errorf("%w: unsupported type %T", ErrTypeMismatch, v)
	}
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNone reports whether the value is unset.
func (v Value) IsNone() bool { return v.kind == KindNone }

// Interface returns the wrapped scalar as a plain Go value, or nil for None.
func (v Value) Interface() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindBool:
		return v.b
	default:
		return nil
	}
}

// Equal reports whether two values have the same kind and the same scalar.
func (v Value) Equal(other Value) bool {
	return v == other
}

// String returns a display form of the value.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.Itoa(v.i)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return "none"
	}
}

// compatible reports whether two values may belong to the same setting.
// None acts as a wildcard that matches every kind.
func compatible(a, b Value) bool {
	return a.kind == KindNone || b.kind == KindNone || a.kind == b.kind
}

// sortedKeys returns the map's keys in lexicographic order so that
// validation walks maps deterministically.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
