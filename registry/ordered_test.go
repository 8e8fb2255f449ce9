package registry

import (
	"cmp"
	"slices"
	"testing"
)

// collect drains the Values sequence into a slice.
func collect[K cmp.Ordered, V comparable](o *Ordered[K, V]) []V {
	var vals []V
	for v := range o.Values() {
		vals = append(vals, v)
	}
	return vals
}

// TestOrderedDuplicateKeyStability tests that iteration yields
// ascending keys with equal-keyed entries in their original insertion
// order.
func TestOrderedDuplicateKeyStability(t *testing.T) {
	var o Ordered[int, string]
	o.Add(5, "first-5")
	o.Add(3, "only-3")
	o.Add(5, "second-5")
	o.Add(1, "only-1")

	var keys []int
	var vals []string
	for k, v := range o.All() {
		keys = append(keys, k)
		vals = append(vals, v)
	}

	if want := []int{1, 3, 5, 5}; !slices.Equal(keys, want) {
		t.Errorf("key order = %v, want %v", keys, want)
	}
	if want := []string{"only-1", "only-3", "first-5", "second-5"}; !slices.Equal(vals, want) {
		t.Errorf("value order = %v, want %v", vals, want)
	}
}

// TestOrderedRemoveByValue tests that Remove matches on value, not key:
// with three entries sharing a key, removing the second leaves the
// other two in their original relative order.
func TestOrderedRemoveByValue(t *testing.T) {
	var o Ordered[int, string]
	o.Add(7, "a")
	o.Add(7, "b")
	o.Add(7, "c")

	if !o.Remove("b") {
		t.Fatal("Remove(b) = false, want true")
	}

	if want := []string{"a", "c"}; !slices.Equal(collect(&o), want) {
		t.Errorf("values after remove = %v, want %v", collect(&o), want)
	}
}

// TestOrderedRemoveAbsent tests that removing an unregistered value is
// a silent no-op.
func TestOrderedRemoveAbsent(t *testing.T) {
	var o Ordered[int, string]
	o.Add(1, "a")

	if o.Remove("ghost") {
		t.Error("Remove of an absent value reported true")
	}
	if o.Len() != 1 {
		t.Errorf("Len() = %d after no-op remove, want 1", o.Len())
	}
}

// TestOrderedRemoveFirstMatchOnly tests that Remove deletes exactly one
// entry even when a value was registered twice.
func TestOrderedRemoveFirstMatchOnly(t *testing.T) {
	var o Ordered[int, string]
	o.Add(1, "dup")
	o.Add(2, "dup")

	o.Remove("dup")

	if o.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", o.Len())
	}
	for k := range o.All() {
		if k != 2 {
			t.Errorf("remaining key = %d, want 2 (first match removed)", k)
		}
	}
}

// TestOrderedIterationRestartable tests that the sequence can be ranged
// multiple times and supports early exit.
func TestOrderedIterationRestartable(t *testing.T) {
	var o Ordered[int, string]
	o.Add(2, "b")
	o.Add(1, "a")

	first := collect(&o)
	second := collect(&o)
	if !slices.Equal(first, second) {
		t.Errorf("restarted iteration differs: %v vs %v", first, second)
	}

	// Early exit must not panic or yield further values.
	count := 0
	for range o.Values() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("early-exit iteration yielded %d values, want 1", count)
	}
}

// TestOrderedSnapshot tests that Snapshot detaches from later
// mutations.
func TestOrderedSnapshot(t *testing.T) {
	var o Ordered[int, string]
	o.Add(1, "a")
	o.Add(2, "b")

	snap := o.Snapshot()
	o.Remove("a")

	if want := []string{"a", "b"}; !slices.Equal(snap, want) {
		t.Errorf("snapshot = %v, want %v", snap, want)
	}
	if want := []string{"b"}; !slices.Equal(collect(&o), want) {
		t.Errorf("live values = %v, want %v", collect(&o), want)
	}
}

// TestOrderedSortedness tests that a batch of out-of-order insertions
// always reads back sorted.
func TestOrderedSortedness(t *testing.T) {
	var o Ordered[int, int]
	for i, key := range []int{9, 2, 7, 2, 0, 9, 4} {
		o.Add(key, i)
	}

	var keys []int
	for k := range o.All() {
		keys = append(keys, k)
	}
	if !slices.IsSorted(keys) {
		t.Errorf("keys not sorted: %v", keys)
	}
	if o.Len() != 7 {
		t.Errorf("Len() = %d, want 7 (duplicates never collapse)", o.Len())
	}
}

// TestOrderedClear tests Clear.
func TestOrderedClear(t *testing.T) {
	var o Ordered[int, string]
	o.Add(1, "a")
	o.Clear()
	if o.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", o.Len())
	}
}
