package swell

// Smoothstep returns the cubic Hermite interpolation of x between edge0
// and edge1: 0 at or below edge0, 1 at or above edge1, with zero slope
// at both edges.
func Smoothstep(edge0, edge1, x float32) float32 {
	t := clamp01((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

// brushFalloff is the paint weight at normalized brush distance alpha:
// 1 at the brush center, easing to exactly 0 at and beyond alpha=1.
func brushFalloff(alpha float32) float32 {
	return 1 - Smoothstep(0, 1, alpha)
}

// clamp01 clamps x into [0, 1].
func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// lerp32 linearly interpolates between a and b by t.
func lerp32(a, b, t float32) float32 {
	return a + (b-a)*t
}
