package registry

import (
	"cmp"
	"iter"
	"sort"
)

// entry is one (key, value) pair of an Ordered multimap.
type entry[K cmp.Ordered, V comparable] struct {
	key K
	val V
}

// Ordered is a sorted multimap: a sequence of (key, value) pairs kept
// in ascending key order where duplicate keys never collapse. Entries
// added with an already-present key sort after the existing ones, so
// iteration order is fully deterministic: ascending by key, insertion
// order within a key.
//
// It is implemented as a sorted slice maintained by binary-search
// insertion. The zero value is an empty multimap ready for use.
//
// Ordered is not safe for concurrent use, and mutating it during an
// in-progress iteration is undefined; use Snapshot to walk a copy when
// the walk itself unregisters entries.
type Ordered[K cmp.Ordered, V comparable] struct {
	entries []entry[K, V]
}

// Add inserts a value under the given key, after any existing entries
// with an equal key.
func (o *Ordered[K, V]) Add(key K, val V) {
	// Upper bound: first index whose key is strictly greater.
	i := sort.Search(len(o.entries), func(i int) bool {
		return o.entries[i].key > key
	})
	o.entries = append(o.entries, entry[K, V]{})
	copy(o.entries[i+1:], o.entries[i:])
	o.entries[i] = entry[K, V]{key: key, val: val}
}

// Remove deletes the first entry whose value equals val, comparing
// values only: entries sharing a key are distinguished by value.
// Removing an absent value is a no-op; redundant unregistration is not
// an error. Reports whether an entry was removed.
func (o *Ordered[K, V]) Remove(val V) bool {
	for i, e := range o.entries {
		if e.val == val {
			o.entries = append(o.entries[:i], o.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of entries.
func (o *Ordered[K, V]) Len() int {
	return len(o.entries)
}

// All iterates over (key, value) pairs in ascending key order, ties in
// insertion order. The sequence is restartable: each range loop walks
// the current contents from the start.
func (o *Ordered[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range o.entries {
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}

// Values iterates over values in ascending key order, ties in insertion
// order.
func (o *Ordered[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, e := range o.entries {
			if !yield(e.val) {
				return
			}
		}
	}
}

// Snapshot returns the values in iteration order as a fresh slice,
// detached from the multimap. Callers that add or remove entries while
// walking should iterate a snapshot.
func (o *Ordered[K, V]) Snapshot() []V {
	vals := make([]V, len(o.entries))
	for i, e := range o.entries {
		vals[i] = e.val
	}
	return vals
}

// Clear removes every entry.
func (o *Ordered[K, V]) Clear() {
	o.entries = nil
}
