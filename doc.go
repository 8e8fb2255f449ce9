// Package swell provides the CPU-side data structures behind a layered,
// level-of-detail ocean surface: world-addressable 2D grids for simulation
// data (heights, flow) and an ordered registry of the inputs that draw
// into them each frame.
//
// # Overview
//
// swell is a pure Go library with two independent cores. Grid is a
// generic, resizable 2D array addressed by world-space position through
// an affine world-to-texel mapping, with bilinear sampling, edge
// clamping, and radial smoothstep painting. Inputs (built on the
// registry subpackage) keeps every registered ocean input in a
// deterministic draw order, sorted by render queue with duplicate
// queues preserved.
//
// # Quick Start
//
//	import "github.com/oceanlod/swell"
//
//	// A 64x64 height grid covering 128x128 world units around the origin.
//	heights := swell.New[float32]()
//
//	// Paint a swell crest and sample it back.
//	heights.Paint(mgl32.Vec2{10, 4}, 24, 1, 2.5, swell.BlendAdditive, false)
//	h, _ := heights.Sample(mgl32.Vec2{10, 4}, swell.BilinearFloat32)
//
//	// Pull a flattened representation, recomputed only when dirty.
//	snap := swell.NewSnapshot(heights, func(h float32) float32 { return h })
//	buf := snap.Values()
//
// # Coordinate System
//
// Grids live on the world x,z plane:
//   - The grid footprint is centered on Center and spans WorldSize.
//   - Texel (0,0) is the minimum corner, x increases right, y increases up.
//   - Sampling outside the footprint clamps to the boundary texel.
//
// # Concurrency
//
// Grid, Snapshot, and Inputs are not safe for concurrent use; callers on
// multiple goroutines must synchronize externally. The debugview
// subpackage is the one concurrent component and does its own locking.
package swell
