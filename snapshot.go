package swell

import (
	"image"
	"image/png"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"
)

// Snapshot is a cached flattened representation of a grid, the pull
// side of the GPU-sync contract: the (external) upload layer asks for
// Values each frame, and the per-texel conversion only reruns when the
// grid was mutated since the last pull.
//
// The conversion function must be pure: it is called exactly once per
// texel per dirty transition and never while the cache is clean.
//
// Snapshot is not safe for concurrent use.
type Snapshot[T, V any] struct {
	grid    *Grid[T]
	convert func(T) V
	buf     []V
	gen     uint64
	valid   bool
}

// NewSnapshot creates a snapshot of g using the given per-texel
// conversion. Nothing is computed until the first Values call.
func NewSnapshot[T, V any](g *Grid[T], convert func(T) V) *Snapshot[T, V] {
	return &Snapshot[T, V]{grid: g, convert: convert}
}

// Values returns the flattened representation in row-major order,
// length Width()*Height(). The returned slice is the internal cache:
// callers must not modify it, and it is only valid until the next
// Values call after a grid mutation.
func (s *Snapshot[T, V]) Values() []V {
	if s.valid && s.gen == s.grid.Generation() {
		return s.buf
	}

	data := s.grid.Data()
	if len(s.buf) != len(data) {
		s.buf = make([]V, len(data))
	}
	for i, v := range data {
		s.buf[i] = s.convert(v)
	}
	s.gen = s.grid.Generation()
	s.valid = true
	return s.buf
}

// Invalidate forces the next Values call to recompute, regardless of
// the grid's generation.
func (s *Snapshot[T, V]) Invalidate() {
	s.valid = false
}

// ByteSnapshot is a Snapshot specialization producing RGBA8 bytes, the
// layout an upload layer binds as a gputypes.TextureFormatRGBA8Unorm texture.
// It also adapts the grid to image.Image for export and previewing.
//
// ByteSnapshot is not safe for concurrent use.
type ByteSnapshot[T any] struct {
	snap   *Snapshot[T, [4]uint8]
	grid   *Grid[T]
	pixels []uint8
	gen    uint64
	valid  bool
}

// NewByteSnapshot creates an RGBA8 snapshot of g using the given
// per-texel color conversion.
func NewByteSnapshot[T any](g *Grid[T], convert func(T) [4]uint8) *ByteSnapshot[T] {
	return &ByteSnapshot[T]{
		snap: NewSnapshot(g, convert),
		grid: g,
	}
}

// Format returns the texture format of the byte layout produced by
// Bytes: 8-bit RGBA, 4 bytes per texel.
func (b *ByteSnapshot[T]) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Bytes returns the flattened RGBA8 buffer in row-major order, length
// Width()*Height()*4, recomputed only when the grid was mutated. The
// returned slice is the internal cache and must not be modified.
func (b *ByteSnapshot[T]) Bytes() []uint8 {
	if b.valid && b.gen == b.grid.Generation() {
		return b.pixels
	}

	texels := b.snap.Values()
	if len(b.pixels) != len(texels)*4 {
		b.pixels = make([]uint8, len(texels)*4)
	}
	for i, px := range texels {
		copy(b.pixels[i*4:], px[:])
	}
	b.gen = b.grid.Generation()
	b.valid = true
	return b.pixels
}

// Image returns the snapshot as an image.NRGBA of the grid resolution.
// The image shares no storage with the snapshot cache.
func (b *ByteSnapshot[T]) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.grid.Width(), b.grid.Height()))
	copy(img.Pix, b.Bytes())
	return img
}

// Preview returns the snapshot scaled to the given size using bilinear
// filtering. Useful for thumbnailing high-resolution grids.
func (b *ByteSnapshot[T]) Preview(width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), b.Image(), b.grid.Bounds(), draw.Src, nil)
	return dst
}

// SavePNG writes the snapshot to a PNG file.
func (b *ByteSnapshot[T]) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, b.Image())
}

// Bounds returns the grid's texel rectangle.
func (g *Grid[T]) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.width, g.height)
}

// HeightRGBA returns a grayscale conversion for scalar grids, mapping
// [min, max] onto black..white with full alpha.
func HeightRGBA(min, max float32) func(float32) [4]uint8 {
	span := max - min
	return func(h float32) [4]uint8 {
		v := uint8(clamp01((h-min)/span) * 255)
		return [4]uint8{v, v, v, 255}
	}
}

// FlowRGBA returns a conversion for flow grids, mapping each component
// of [-maxSpeed, maxSpeed] onto the red and green channels with 0.5 as
// stillness, the layout flow-map consumers expect.
func FlowRGBA(maxSpeed float32) func(mgl32.Vec2) [4]uint8 {
	return func(v mgl32.Vec2) [4]uint8 {
		r := uint8(clamp01(v.X()/(2*maxSpeed)+0.5) * 255)
		g := uint8(clamp01(v.Y()/(2*maxSpeed)+0.5) * 255)
		return [4]uint8{r, g, 128, 255}
	}
}
