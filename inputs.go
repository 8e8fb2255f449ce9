package swell

import (
	"iter"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oceanlod/swell/registry"
)

// Kind identifies one family of LOD simulation data. Each kind has its
// own independently ordered set of registered inputs.
type Kind int

// The simulation data kinds of the layered ocean representation.
const (
	KindHeight Kind = iota
	KindFlow
	KindFoam
	KindDynamicWaves
	KindClip
	KindShadow
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindHeight:
		return "height"
	case KindFlow:
		return "flow"
	case KindFoam:
		return "foam"
	case KindDynamicWaves:
		return "dynamic-waves"
	case KindClip:
		return "clip"
	case KindShadow:
		return "shadow"
	default:
		return "unknown"
	}
}

// DrawContext carries the per-pass state handed to each input when the
// frame sequencer walks a kind in order.
type DrawContext struct {
	// Lod is the index of the LOD level being drawn.
	Lod int

	// Weight is the blend weight of this LOD level, in [0, 1].
	Weight float32

	// Heights is the scalar target grid bound for this pass, or nil
	// when the pass does not write heights.
	Heights *Grid[float32]

	// Flow is the vector target grid bound for this pass, or nil when
	// the pass does not write flow.
	Flow *Grid[mgl32.Vec2]
}

// Input is anything that can draw into LOD data. This is the entire
// contract between registered inputs and the frame sequencer: concrete
// implementations (wave spectra, painted overrides, object wakes) are
// supplied by the caller.
type Input interface {
	// Draw writes this input's contribution into the bound targets.
	Draw(ctx *DrawContext)

	// Wavelength is the feature size of the input in world units,
	// used by the sequencer to pick which LOD levels it touches.
	// Zero means all levels.
	Wavelength() float32

	// Enabled reports whether the input currently draws. Disabled
	// inputs stay registered and keep their queue position.
	Enabled() bool
}

// Inputs tracks every registered ocean input, grouped by Kind and
// ordered by render queue. Inputs sharing a queue value keep their
// registration order, so a frame's draw sequence is fully
// deterministic.
//
// Inputs is explicitly constructed and carries its own reset
// lifecycle; it is not process-global state. It is not safe for
// concurrent use.
type Inputs struct {
	reg *registry.Registry[Kind, int, Input]
}

// NewInputs creates an empty input registry.
func NewInputs() *Inputs {
	return &Inputs{
		reg: registry.New[Kind, int, Input](),
	}
}

// Add registers an input under a kind at the given render queue.
// Inputs added later at the same queue draw after earlier ones.
func (r *Inputs) Add(kind Kind, queue int, in Input) {
	r.reg.Add(kind, queue, in)
}

// Remove unregisters an input from a kind. Removing an input that was
// never registered, or was already removed, is a silent no-op.
func (r *Inputs) Remove(kind Kind, in Input) {
	r.reg.Remove(kind, in)
}

// Count returns the number of inputs registered under a kind.
func (r *Inputs) Count(kind Kind) int {
	return r.reg.Len(kind)
}

// ForKind iterates the inputs of a kind in draw order: ascending render
// queue, registration order within a queue. The sequence is restartable
// and reflects the registrations current at iteration time.
func (r *Inputs) ForKind(kind Kind) iter.Seq[Input] {
	return r.reg.For(kind).Values()
}

// Draw walks a kind in draw order and invokes every enabled input with
// ctx. Registrations must not change during the walk; an input that
// unregisters others from its Draw should be driven from a snapshot
// instead.
func (r *Inputs) Draw(kind Kind, ctx *DrawContext) {
	for in := range r.ForKind(kind) {
		if !in.Enabled() {
			continue
		}
		in.Draw(ctx)
	}
}

// Reset drops every registration across all kinds. Owners must
// re-register after a reset.
func (r *Inputs) Reset() {
	r.reg.Reset()
	Logger().Info("swell: input registry reset", slog.String("scope", "all kinds"))
}
