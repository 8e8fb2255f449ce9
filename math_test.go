package swell

import (
	"testing"

	"github.com/chewxy/math32"
)

// TestSmoothstep tests the cubic Hermite easing at its fixed points.
func TestSmoothstep(t *testing.T) {
	tests := []struct {
		name         string
		edge0, edge1 float32
		x            float32
		want         float32
	}{
		{"below edge0", 0, 1, -1, 0},
		{"at edge0", 0, 1, 0, 0},
		{"midpoint", 0, 1, 0.5, 0.5},
		{"at edge1", 0, 1, 1, 1},
		{"beyond edge1", 0, 1, 5, 1},
		{"shifted range", 2, 4, 3, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Smoothstep(tt.edge0, tt.edge1, tt.x)
			if math32.Abs(got-tt.want) > 1e-6 {
				t.Errorf("Smoothstep(%v, %v, %v) = %v, want %v", tt.edge0, tt.edge1, tt.x, got, tt.want)
			}
		})
	}
}

// TestBrushFalloff tests the weight curve the paint brush applies over
// normalized distance.
func TestBrushFalloff(t *testing.T) {
	if got := brushFalloff(0); got != 1 {
		t.Errorf("brushFalloff(0) = %v, want full weight 1", got)
	}
	if got := brushFalloff(1); got != 0 {
		t.Errorf("brushFalloff(1) = %v, want exactly 0", got)
	}
	if got := brushFalloff(1.5); got != 0 {
		t.Errorf("brushFalloff(1.5) = %v, want exactly 0 beyond the radius", got)
	}
	if a, b := brushFalloff(0.3), brushFalloff(0.6); a <= b {
		t.Errorf("brushFalloff not decreasing: f(0.3)=%v <= f(0.6)=%v", a, b)
	}
}
