package tooltip

import "sync"

// Registry is the process-wide active-tooltip service. At most one timed
// tooltip is visible at a time: acquiring the registry displaces the
// previous owner, and while any owner is registered, follow-up tooltips
// in the same interaction session open with zero delay.
//
// The registry is injected into tooltip stores at construction instead of
// living as package-level state, so tests and isolated widget trees can
// run their own.
type Registry struct {
	mu    sync.Mutex
	token string
	hide  func()
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Acquire makes token the active owner and records its hide callback.
// The previous owner, if any, is hidden.
func (r *Registry) Acquire(token string, hide func()) {
	r.mu.Lock()
	prevHide := r.hide
	displaced := r.token != "" && r.token != token
	r.token = token
	r.hide = hide
	r.mu.Unlock()
	if displaced && prevHide != nil {
		prevHide()
	}
}

// Release clears the registry, but only when token still owns it: a stale
// release never clobbers a newer owner. It reports whether it cleared.
func (r *Registry) Release(token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.token != token {
		return false
	}
	r.token = ""
	r.hide = nil
	return true
}

// Active returns the owning token, empty when no tooltip is active.
func (r *Registry) Active() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.token
}
