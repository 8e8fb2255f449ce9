package registry

import "cmp"

// Registry maps opaque categories to their own Ordered multimap,
// created lazily on first use. It replaces process-global registration
// state with an explicitly constructed object: owners register into a
// category, the consumer iterates each category in order, and Reset
// clears everything when the surrounding system reinitializes.
//
// After a Reset all previous registrations are gone; owners must
// re-register.
type Registry[C comparable, K cmp.Ordered, V comparable] struct {
	categories map[C]*Ordered[K, V]
}

// New creates an empty registry.
func New[C comparable, K cmp.Ordered, V comparable]() *Registry[C, K, V] {
	return &Registry[C, K, V]{
		categories: make(map[C]*Ordered[K, V]),
	}
}

// For returns the multimap for a category, creating it on first request.
func (r *Registry[C, K, V]) For(category C) *Ordered[K, V] {
	o, ok := r.categories[category]
	if !ok {
		o = &Ordered[K, V]{}
		r.categories[category] = o
	}
	return o
}

// Add registers a value under a category with the given ordering key.
func (r *Registry[C, K, V]) Add(category C, key K, val V) {
	r.For(category).Add(key, val)
}

// Remove unregisters a value from a category. Removing a value that was
// never registered (or was already removed) is a silent no-op.
func (r *Registry[C, K, V]) Remove(category C, val V) bool {
	o, ok := r.categories[category]
	if !ok {
		return false
	}
	return o.Remove(val)
}

// Len returns the number of entries registered under a category.
func (r *Registry[C, K, V]) Len(category C) int {
	o, ok := r.categories[category]
	if !ok {
		return 0
	}
	return o.Len()
}

// Reset drops every category and every registration. Multimaps handed
// out by For before the reset are detached: they no longer belong to
// the registry and For will hand out fresh ones.
func (r *Registry[C, K, V]) Reset() {
	clear(r.categories)
}
