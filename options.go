package swell

import "github.com/go-gl/mathgl/mgl32"

// Default grid configuration.
const (
	// DefaultResolution is the default texel count on each axis.
	DefaultResolution = 64

	// DefaultWorldSize is the default world-space extent on each axis.
	DefaultWorldSize = 128
)

// Option configures a Grid during creation.
//
// Example:
//
//	// Default 64x64 grid over 128x128 world units.
//	g := swell.New[float32]()
//
//	// A denser grid tracking a viewer at (512, 256).
//	g := swell.New[float32](
//	    swell.WithResolution(256, 256),
//	    swell.WithWorldSize(64, 64),
//	    swell.WithCenter(mgl32.Vec2{512, 256}),
//	)
type Option func(*gridOptions)

// gridOptions holds optional configuration for Grid creation.
type gridOptions struct {
	width, height int
	worldSize     mgl32.Vec2
	center        mgl32.Vec2
}

// defaultGridOptions returns the default grid options.
func defaultGridOptions() gridOptions {
	return gridOptions{
		width:     DefaultResolution,
		height:    DefaultResolution,
		worldSize: mgl32.Vec2{DefaultWorldSize, DefaultWorldSize},
	}
}

// WithResolution sets the texel resolution of the grid.
// Both axes must be at least 2; New panics otherwise, since bilinear
// sampling is undefined on a 1-wide axis.
func WithResolution(width, height int) Option {
	return func(o *gridOptions) {
		o.width = width
		o.height = height
	}
}

// WithWorldSize sets the world-space extent covered by the grid.
func WithWorldSize(x, y float32) Option {
	return func(o *gridOptions) {
		o.worldSize = mgl32.Vec2{x, y}
	}
}

// WithCenter sets the world-space center of the grid footprint.
func WithCenter(center mgl32.Vec2) Option {
	return func(o *gridOptions) {
		o.center = center
	}
}
