package swell

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// BlendFunc combines an existing texel value with the painted value.
// weight is the effective brush weight at the texel, already scaled by
// the falloff: full strength at the brush center, 0 at and beyond the
// brush radius. erase selects the blend's removal mode (for example
// subtract instead of add); it is forwarded unchanged from Paint.
type BlendFunc[T any] func(existing, value T, weight float32, erase bool) T

// Paint blends value into the grid over a circular brush footprint.
//
// center and radius are in world units; weight scales the brush
// strength and is typically in [0, 1]. The per-texel weight eases from
// weight at the brush center down to exactly 0 at normalized distance 1
// (smoothstep falloff), so texels at or beyond the radius are
// unmodified. When texel density differs between axes the footprint is
// elliptical: the distance is normalized per axis by the texel-space
// radius.
//
// The scan covers the axis-aligned texel bounding box of the brush,
// clipped to the grid; texels inside the box but outside the radius
// receive zero weight through the falloff rather than being skipped.
// blend is invoked for every scanned texel.
//
// Paint returns true iff at least one texel was scanned, that is the
// brush bounding box intersected the grid. A brush entirely off the
// grid (or a non-positive radius) returns false. The grid is marked
// dirty exactly when Paint returns true.
func (g *Grid[T]) Paint(center mgl32.Vec2, radius, weight float32, value T, blend BlendFunc[T], erase bool) bool {
	if radius <= 0 {
		return false
	}
	g.initIfNeeded()

	cx, cy := g.worldToTexel(center)
	rx := radius / g.worldSize.X() * float32(g.width)
	ry := radius / g.worldSize.Y() * float32(g.height)

	x0 := int(math32.Floor(cx - rx))
	x1 := int(math32.Ceil(cx + rx))
	y0 := int(math32.Floor(cy - ry))
	y1 := int(math32.Ceil(cy + ry))

	wrote := false
	for y := y0; y <= y1; y++ {
		if y < 0 || y >= g.height {
			continue
		}
		for x := x0; x <= x1; x++ {
			if x < 0 || x >= g.width {
				continue
			}

			xn := (float32(x) - cx) / rx
			yn := (float32(y) - cy) / ry
			alpha := math32.Sqrt(xn*xn + yn*yn)

			i := y*g.width + x
			g.data[i] = blend(g.data[i], value, weight*brushFalloff(alpha), erase)
			wrote = true
		}
	}

	if wrote {
		g.gen++
	}
	return wrote
}

// BlendAdditive is a BlendFunc for scalar grids: it adds value scaled
// by the brush weight, or subtracts it when erasing.
func BlendAdditive(existing, value, weight float32, erase bool) float32 {
	if erase {
		return existing - value*weight
	}
	return existing + value*weight
}

// BlendLerp is a BlendFunc for scalar grids: it moves the existing
// value toward the painted value by the brush weight, or toward zero
// when erasing.
func BlendLerp(existing, value, weight float32, erase bool) float32 {
	if erase {
		value = 0
	}
	return lerp32(existing, value, weight)
}

// BlendFlow is a BlendFunc for flow grids: it accumulates the painted
// vector scaled by the brush weight, or removes it when erasing.
func BlendFlow(existing, value mgl32.Vec2, weight float32, erase bool) mgl32.Vec2 {
	if erase {
		return existing.Sub(value.Mul(weight))
	}
	return existing.Add(value.Mul(weight))
}
