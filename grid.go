package swell

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// Grid is a resizable 2D array of simulation values addressed by
// world-space position. The footprint is centered on Center and spans
// WorldSize world units; storage is row major with texel (0,0) at the
// minimum corner.
//
// Storage is allocated lazily on first use. Resizing discards existing
// contents: callers must not assume texel values survive a Resize.
// Moving the center or changing the world size remaps the footprint
// without touching stored values.
//
// Grid is not safe for concurrent use.
type Grid[T any] struct {
	width, height int
	worldSize     mgl32.Vec2
	center        mgl32.Vec2
	data          []T

	// gen counts mutations. Derived representations (Snapshot,
	// ByteSnapshot) compare it against the value they last saw to
	// decide whether their cache is stale.
	gen uint64
}

// New creates a grid with the given options.
// Defaults: 64x64 texels over 128x128 world units centered on the origin.
//
// New panics if the configured resolution is below 2 on either axis.
func New[T any](opts ...Option) *Grid[T] {
	o := defaultGridOptions()
	for _, opt := range opts {
		opt(&o)
	}
	mustValidResolution(o.width, o.height)

	return &Grid[T]{
		width:     o.width,
		height:    o.height,
		worldSize: o.worldSize,
		center:    o.center,
	}
}

// mustValidResolution panics unless both axes are at least 2 texels.
// A 1-wide axis makes bilinear sampling mathematically undefined, so
// this is a programming error rather than a recoverable condition.
func mustValidResolution(width, height int) {
	if width < 2 || height < 2 {
		panic("swell: grid resolution must be at least 2x2")
	}
}

// Width returns the texel count on the x axis.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the texel count on the y axis.
func (g *Grid[T]) Height() int { return g.height }

// WorldSize returns the world-space extent covered by the grid.
func (g *Grid[T]) WorldSize() mgl32.Vec2 { return g.worldSize }

// Center returns the world-space center of the grid footprint.
func (g *Grid[T]) Center() mgl32.Vec2 { return g.center }

// Generation returns the mutation counter. It increases on every
// write (Set, Clear, Paint, Resize) and never decreases.
func (g *Grid[T]) Generation() uint64 { return g.gen }

// initIfNeeded allocates backing storage on first use.
func (g *Grid[T]) initIfNeeded() {
	if g.data != nil {
		return
	}
	g.data = make([]T, g.width*g.height)
	Logger().Debug("swell: grid allocated",
		slog.Int("width", g.width),
		slog.Int("height", g.height))
}

// Data returns the backing slice in row-major order, allocating it if
// needed. Its length is Width()*Height(). Writes through the slice are
// visible to samplers but bypass dirty tracking; prefer Set.
func (g *Grid[T]) Data() []T {
	g.initIfNeeded()
	return g.data
}

// Resize changes the texel resolution. Existing contents are discarded,
// not migrated: after a Resize every texel reads as the zero value.
// Resize with the current resolution still discards.
//
// Resize panics if either axis is below 2.
func (g *Grid[T]) Resize(width, height int) {
	mustValidResolution(width, height)
	g.width = width
	g.height = height
	g.data = nil
	g.gen++
	Logger().Debug("swell: grid resized",
		slog.Int("width", width),
		slog.Int("height", height))
}

// Recenter moves the world-space center of the footprint. Stored texel
// values are unchanged; their real-world positions shift.
func (g *Grid[T]) Recenter(center mgl32.Vec2) {
	g.center = center
}

// SetWorldSize changes the world-space extent of the footprint. Stored
// texel values are unchanged; their real-world footprint stretches.
func (g *Grid[T]) SetWorldSize(size mgl32.Vec2) {
	g.worldSize = size
}

// Clear sets every texel to v.
func (g *Grid[T]) Clear(v T) {
	g.initIfNeeded()
	for i := range g.data {
		g.data[i] = v
	}
	g.gen++
}

// At returns the value at texel (x, y). Coordinates outside the grid
// return the zero value.
func (g *Grid[T]) At(x, y int) T {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		var zero T
		return zero
	}
	g.initIfNeeded()
	return g.data[y*g.width+x]
}

// Set writes the value at texel (x, y). Coordinates outside the grid
// are ignored.
func (g *Grid[T]) Set(x, y int, v T) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.initIfNeeded()
	g.data[y*g.width+x] = v
	g.gen++
}

// worldToTexel maps a world-space position to continuous texel space.
// The footprint center maps to the middle of the grid; texel centers
// sit at integer coordinates.
func (g *Grid[T]) worldToTexel(pos mgl32.Vec2) (tx, ty float32) {
	tx = ((pos.X()-g.center.X())/g.worldSize.X()+0.5)*float32(g.width) - 0.5
	ty = ((pos.Y()-g.center.Y())/g.worldSize.Y()+0.5)*float32(g.height) - 0.5
	return tx, ty
}
