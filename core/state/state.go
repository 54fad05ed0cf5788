package state

import (
	"maps"
	"reflect"
)

// State is a flat keyed mapping shared by components and stores.
// Values are replaced wholesale on merge; nested maps, slices and sets are never deep-merged.
type State map[string]any

// Merge returns a new State holding base with every top-level key of partial written over it.
// Neither argument is modified.
func Merge(base, partial State) State {
	out := make(State, len(base)+len(partial))
	maps.Copy(out, base)
	maps.Copy(out, partial)
	return out
}

// Clone returns a shallow copy of s. A nil State clones to an empty one.
func (s State) Clone() State {
	out := make(State, len(s))
	maps.Copy(out, s)
	return out
}

// Has reports whether key is present, even when its value is nil.
func (s State) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Get returns the value stored under key converted to T.
// Absent keys and values of another type yield the zero value and false,
// so templates can treat them as "not yet loaded".
func Get[T any](s State, key string) (T, bool) {
	var zero T
	raw, ok := s[key]
	if !ok || raw == nil {
		return zero, false
	}
	v, ok := raw.(T)
	if !ok {
		return zero, false
	}
	return v, true
}

// Value is Get without the presence flag.
func Value[T any](s State, key string) T {
	v, _ := Get[T](s, key)
	return v
}

// String returns the string under key or "".
func (s State) String(key string) string {
	return Value[string](s, key)
}

// Bool returns the bool under key or false.
func (s State) Bool(key string) bool {
	return Value[bool](s, key)
}

// Int returns the int under key or 0.
func (s State) Int(key string) int {
	return Value[int](s, key)
}

// Same reports whether a and b are the same value for change detection.
// Scalars use ==; reference kinds (maps, slices, funcs, pointers, channels)
// compare by identity and length. Structs and arrays compare field by field with
// the same rules, so a struct holding a callback equals itself.
func Same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return sameValue(reflect.ValueOf(a), reflect.ValueOf(b))
}

func sameValue(va, vb reflect.Value) bool {
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Map, reflect.Slice:
		if va.IsNil() || vb.IsNil() {
			return va.IsNil() == vb.IsNil()
		}
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Func, reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Interface:
		if va.IsNil() || vb.IsNil() {
			return va.IsNil() == vb.IsNil()
		}
		return sameValue(va.Elem(), vb.Elem())
	case reflect.Struct:
		for i := range va.NumField() {
			if !sameValue(va.Field(i), vb.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Array:
		for i := range va.Len() {
			if !sameValue(va.Index(i), vb.Index(i)) {
				return false
			}
		}
		return true
	default:
		return va.Equal(vb)
	}
}

// SameTuple compares two selector tuples element-wise with Same.
func SameTuple(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Same(a[i], b[i]) {
			return false
		}
	}
	return true
}
