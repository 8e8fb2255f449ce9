package swell

import (
	"slices"
	"testing"
)

// fakeInput records its draws into a shared log.
type fakeInput struct {
	name       string
	wavelength float32
	disabled   bool
	log        *[]string
}

func (f *fakeInput) Draw(*DrawContext)   { *f.log = append(*f.log, f.name) }
func (f *fakeInput) Wavelength() float32 { return f.wavelength }
func (f *fakeInput) Enabled() bool       { return !f.disabled }

// TestInputsDrawOrder tests that Draw walks a kind by ascending render
// queue with registration order breaking ties.
func TestInputsDrawOrder(t *testing.T) {
	var log []string
	r := NewInputs()

	// Same insertion pattern as the queue values: 5, 3, 5, 1.
	r.Add(KindHeight, 5, &fakeInput{name: "a", log: &log})
	r.Add(KindHeight, 3, &fakeInput{name: "b", log: &log})
	r.Add(KindHeight, 5, &fakeInput{name: "c", log: &log})
	r.Add(KindHeight, 1, &fakeInput{name: "d", log: &log})

	r.Draw(KindHeight, &DrawContext{})

	want := []string{"d", "b", "a", "c"}
	if !slices.Equal(log, want) {
		t.Errorf("draw order = %v, want %v", log, want)
	}
}

// TestInputsSkipDisabled tests that disabled inputs keep their place
// but do not draw.
func TestInputsSkipDisabled(t *testing.T) {
	var log []string
	r := NewInputs()

	r.Add(KindHeight, 1, &fakeInput{name: "a", log: &log})
	r.Add(KindHeight, 2, &fakeInput{name: "b", disabled: true, log: &log})
	r.Add(KindHeight, 3, &fakeInput{name: "c", log: &log})

	r.Draw(KindHeight, &DrawContext{})

	want := []string{"a", "c"}
	if !slices.Equal(log, want) {
		t.Errorf("draw order = %v, want %v", log, want)
	}
	if got := r.Count(KindHeight); got != 3 {
		t.Errorf("Count = %d, want 3 (disabled inputs stay registered)", got)
	}
}

// TestInputsKindsIndependent tests that each kind has its own ordering.
func TestInputsKindsIndependent(t *testing.T) {
	var log []string
	r := NewInputs()

	r.Add(KindHeight, 1, &fakeInput{name: "height", log: &log})
	r.Add(KindFlow, 1, &fakeInput{name: "flow", log: &log})

	if got := r.Count(KindHeight); got != 1 {
		t.Errorf("Count(KindHeight) = %d, want 1", got)
	}
	if got := r.Count(KindFoam); got != 0 {
		t.Errorf("Count(KindFoam) = %d, want 0", got)
	}

	r.Draw(KindFlow, &DrawContext{})
	if !slices.Equal(log, []string{"flow"}) {
		t.Errorf("flow draw touched other kinds: %v", log)
	}
}

// TestInputsRemove tests unregistration, including the redundant case.
func TestInputsRemove(t *testing.T) {
	var log []string
	r := NewInputs()

	a := &fakeInput{name: "a", log: &log}
	b := &fakeInput{name: "b", log: &log}
	c := &fakeInput{name: "c", log: &log}
	r.Add(KindHeight, 7, a)
	r.Add(KindHeight, 7, b)
	r.Add(KindHeight, 7, c)

	r.Remove(KindHeight, b)
	r.Remove(KindHeight, b) // redundant teardown is a silent no-op

	r.Draw(KindHeight, &DrawContext{})
	if want := []string{"a", "c"}; !slices.Equal(log, want) {
		t.Errorf("draw order after remove = %v, want %v", log, want)
	}
}

// TestInputsReset tests that Reset drops every registration in every
// kind.
func TestInputsReset(t *testing.T) {
	var log []string
	r := NewInputs()
	r.Add(KindHeight, 1, &fakeInput{name: "a", log: &log})
	r.Add(KindFlow, 1, &fakeInput{name: "b", log: &log})

	r.Reset()

	if got := r.Count(KindHeight) + r.Count(KindFlow); got != 0 {
		t.Errorf("registrations after Reset = %d, want 0", got)
	}
	r.Draw(KindHeight, &DrawContext{})
	if len(log) != 0 {
		t.Errorf("draws after Reset: %v", log)
	}
}

// TestKindString tests the kind names.
func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindHeight, "height"},
		{KindFlow, "flow"},
		{KindFoam, "foam"},
		{KindDynamicWaves, "dynamic-waves"},
		{KindClip, "clip"},
		{KindShadow, "shadow"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}
