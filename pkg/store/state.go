package store

import "reflect"

// State is a snapshot of a store's state: a mapping from field name to
// value. Snapshots are immutable; stores replace them wholesale on update.
type State map[string]any

// Get returns the value of key as T, or the zero value when the key is
// missing or holds a different type.
func Get[T any](s State, key string) T {
	v, _ := GetOK[T](s, key)
	return v
}

// GetOK returns the value of key as T and reports whether the key was
// present with that type.
func GetOK[T any](s State, key string) (T, bool) {
	raw, ok := s[key]
	if !ok {
		var zero T
		return zero, false
	}
	v, ok := raw.(T)
	return v, ok
}

// equal reports whether two state values are the same by identity or
// equality. Comparable values compare with ==. Slices, maps, channels,
// funcs, and pointers compare by identity, mirroring reference equality in
// the reactive model: replacing a slice always counts as a change unless it
// is literally the same slice.
func equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	av := reflect.ValueOf(a)
	bv := reflect.ValueOf(b)
	if av.Type() != bv.Type() {
		return false
	}
	switch av.Kind() {
	case reflect.Slice:
		if av.Len() != bv.Len() {
			return false
		}
		if av.Len() == 0 {
			return true
		}
		return av.Pointer() == bv.Pointer()
	case reflect.Map, reflect.Chan, reflect.Func, reflect.Pointer, reflect.UnsafePointer:
		return av.Pointer() == bv.Pointer()
	}
	if !av.Type().Comparable() {
		return false
	}
	return a == b
}
