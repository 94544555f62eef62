package store

// DefaultValue picks the initial value for a possibly controlled option:
// the controlled value when provided, the uncontrolled default otherwise.
func DefaultValue[T any](controlled *T, def T) T {
	if controlled != nil {
		return *controlled
	}
	return def
}

// BindControlled wires the controlled-state contract for key and returns a
// push function plus a release function.
//
// When controlled is true and setter is nil, internal writes to the key are
// dropped: the state only moves when the owner commits a new value through
// the returned push function. When setter is non-nil, writes commit normally
// and setter observes every committed value, so the owner can mirror the
// state externally and feed it back through push.
func BindControlled[T any](s *Store, key string, controlled bool, setter func(T)) (push func(T), release func()) {
	push = func(v T) {
		s.SetState(key, v)
	}
	if controlled && setter == nil {
		bypass := false
		s.SetWriteHook(key, func(next any) (any, bool) {
			return next, bypass
		})
		push = func(v T) {
			bypass = true
			s.SetState(key, v)
			bypass = false
		}
		return push, func() {
			s.SetWriteHook(key, nil)
		}
	}
	if setter == nil {
		return push, func() {}
	}
	release = s.Subscribe(func(next, prev State) {
		setter(Get[T](next, key))
	}, key)
	return push, release
}
