package swell

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// InterpFunc blends the texels around a continuous coordinate into a
// single value. data is the grid's row-major backing slice of the given
// width; (x, y) is the bottom-left texel of the 2x2 neighborhood and
// (fx, fy) the fractional offset into it, each in [0, 1].
//
// An interpolation function is supplied by the caller because blending
// semantics depend on the value type: scalar heights lerp, flow vectors
// lerp componentwise, other types may need their own rules.
type InterpFunc[T any] func(data []T, width int, x, y int, fx, fy float32) T

// Sample returns the interpolated value at a world-space position and
// whether the position had to be clamped to the grid footprint.
//
// The position is mapped to continuous texel space, floored to the
// bottom-left texel of its 2x2 neighborhood, and handed to interp. When
// the bottom-left texel falls outside [0, resolution-2] on an axis, the
// texel is clamped into range and the fractional offset on that axis is
// forced to 0 or 1, so out-of-footprint positions reproduce the
// boundary value exactly instead of interpolating toward a neighbor
// that does not exist.
//
// Sample never indexes outside the backing array and has no error
// paths: out-of-domain positions are defined (clamped) behavior.
func (g *Grid[T]) Sample(pos mgl32.Vec2, interp InterpFunc[T]) (value T, clamped bool) {
	g.initIfNeeded()

	tx, ty := g.worldToTexel(pos)

	fx := tx - math32.Floor(tx)
	fy := ty - math32.Floor(ty)
	x := int(math32.Floor(tx))
	y := int(math32.Floor(ty))

	if x < 0 {
		x, fx, clamped = 0, 0, true
	} else if x > g.width-2 {
		x, fx, clamped = g.width-2, 1, true
	}
	if y < 0 {
		y, fy, clamped = 0, 0, true
	} else if y > g.height-2 {
		y, fy, clamped = g.height-2, 1, true
	}

	return interp(g.data, g.width, x, y, fx, fy), clamped
}

// BilinearFloat32 is an InterpFunc for scalar grids (heights, foam,
// depth). It lerps the 2x2 neighborhood.
func BilinearFloat32(data []float32, width, x, y int, fx, fy float32) float32 {
	i := y*width + x
	bottom := lerp32(data[i], data[i+1], fx)
	top := lerp32(data[i+width], data[i+width+1], fx)
	return lerp32(bottom, top, fy)
}

// BilinearVec2 is an InterpFunc for 2D vector grids (flow, displacement).
// It lerps each component of the 2x2 neighborhood.
func BilinearVec2(data []mgl32.Vec2, width, x, y int, fx, fy float32) mgl32.Vec2 {
	i := y*width + x
	bottom := lerpVec2(data[i], data[i+1], fx)
	top := lerpVec2(data[i+width], data[i+width+1], fx)
	return lerpVec2(bottom, top, fy)
}

// lerpVec2 linearly interpolates between two vectors by t.
func lerpVec2(a, b mgl32.Vec2, t float32) mgl32.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}

// Nearest is an InterpFunc that returns the texel nearest to the sample
// position without blending. It works for any value type, including
// ones with no meaningful interpolation (IDs, flags).
func Nearest[T any](data []T, width, x, y int, fx, fy float32) T {
	if fx >= 0.5 {
		x++
	}
	if fy >= 0.5 {
		y++
	}
	return data[y*width+x]
}
