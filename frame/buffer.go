package frame

import (
	"fmt"

	"github.com/leomartinch/raytracer/types"
)

// Buffer stores the linear radiance of every pixel of a frame in row-major
// order. Distinct rows may be written concurrently.
type Buffer struct {
	W, H   int
	Pixels []types.Vec3
}

// NewBuffer allocates a black frame.
func NewBuffer(w, h int) (*Buffer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("frame: invalid dimensions %dx%d", w, h)
	}
	return &Buffer{
		W:      w,
		H:      h,
		Pixels: make([]types.Vec3, w*h),
	}, nil
}

// Row returns the pixels of row h. The returned slice aliases the buffer.
func (b *Buffer) Row(h int) []types.Vec3 {
	return b.Pixels[h*b.W : (h+1)*b.W]
}

// Set the radiance of pixel (row h, column w).
func (b *Buffer) Set(h, w int, c types.Vec3) {
	b.Pixels[h*b.W+w] = c
}

// ToByte maps a radiance channel to [0, 255]. Values above 1 saturate and
// the fractional part is truncated.
func ToByte(c float64) uint8 {
	if !(c > 0) {
		return 0
	}
	return uint8(255 * min(c, 1))
}

// RGB8 converts the buffer into packed 8-bit RGB triplets.
func (b *Buffer) RGB8() []uint8 {
	out := make([]uint8, 0, len(b.Pixels)*3)
	for _, px := range b.Pixels {
		out = append(out, ToByte(px.X), ToByte(px.Y), ToByte(px.Z))
	}
	return out
}
