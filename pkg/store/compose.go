package store

// Compose creates a store that extends parent with the keys of initial.
//
// Shared keys (keys the parent already has) stay owned by the parent: reads
// and writes are forwarded to it, and its current values win over initial.
// The child re-emits parent notifications to its own listeners, merged with
// the child's own state, so a subscriber sees one coherent key space.
//
// Disposing the child detaches it from the parent but leaves the parent
// alive; the parent is owned by whoever created it.
func Compose(parent *Store, initial State) *Store {
	if parent == nil {
		return New(initial)
	}
	state := make(State)
	shape := make(map[string]struct{})
	for k, v := range initial {
		if parent.Has(k) {
			continue
		}
		state[k] = v
		shape[k] = struct{}{}
	}
	child := &Store{
		state:   state,
		shape:   shape,
		parent:  parent,
		changed: make(map[string]struct{}),
	}
	unsub := parent.Subscribe(child.forwardParent)
	child.OnDispose(unsub)
	return child
}

// Parent returns the composed parent store, or nil.
func (s *Store) Parent() *Store {
	return s.parent
}

// forwardParent relays a parent notification to the child's listeners,
// filtered to the keys that actually changed and merged with the child's
// own state.
func (s *Store) forwardParent(next, prev State) {
	if s.disposed {
		return
	}
	changed := make(map[string]struct{})
	for k, v := range next {
		if !equal(v, prev[k]) {
			changed[k] = struct{}{}
		}
	}
	if len(changed) == 0 {
		return
	}

	mergedNext := make(State, len(next)+len(s.state))
	mergedPrev := make(State, len(prev)+len(s.state))
	for k, v := range next {
		mergedNext[k] = v
	}
	for k, v := range prev {
		mergedPrev[k] = v
	}
	for k, v := range s.state {
		mergedNext[k] = v
		mergedPrev[k] = v
	}

	active := s.listeners
	for _, sub := range active {
		if sub == nil {
			continue
		}
		if sub.keys != nil && !intersects(sub.keys, changed) {
			continue
		}
		sub.fn(mergedNext, mergedPrev)
	}
}
