package feature

import (
	"fmt"
	"image"
	"math"
)

// Image is a decoded 3-channel color image with 8-bit samples stored as an
// interleaved B,G,R plane in raster order. Channel 0 is blue, channel 1 is
// green, channel 2 is red; every extractor in this package depends on that
// ordering.
type Image struct {
	Rows int
	Cols int
	// Pix holds Rows*Cols*3 samples, row-major, 3 consecutive bytes per pixel.
	Pix []uint8
}

// FromImage converts a stdlib-decoded image into the BGR plane consumed by the
// extractors. Alpha is discarded.
func FromImage(src image.Image) *Image {
	bounds := src.Bounds()
	rows := bounds.Dy()
	cols := bounds.Dx()
	out := &Image{Rows: rows, Cols: cols, Pix: make([]uint8, rows*cols*3)}
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := src.At(x, y).RGBA()
			out.Pix[i] = uint8(b >> 8)
			out.Pix[i+1] = uint8(g >> 8)
			out.Pix[i+2] = uint8(r >> 8)
			i += 3
		}
	}
	return out
}

// At returns the blue, green, and red samples of the pixel at (row, col).
// Bounds are not checked; callers validate dimensions before iterating.
func (m *Image) At(row, col int) (b, g, r uint8) {
	i := (row*m.Cols + col) * 3
	return m.Pix[i], m.Pix[i+1], m.Pix[i+2]
}

// Empty reports whether the image has no pixels or a truncated pixel plane.
func (m *Image) Empty() bool {
	return m == nil || m.Rows <= 0 || m.Cols <= 0 || len(m.Pix) < m.Rows*m.Cols*3
}

func validateImage(m *Image) error {
	if m.Empty() {
		return fmt.Errorf("feature: %w", ErrEmptyImage)
	}
	return nil
}

// hsv converts 8-bit B,G,R samples into hue (degrees in [0,360)), saturation
// and value (both in [0,1]).
func hsv(b, g, r uint8) (h, s, v float64) {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255
	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	v = max
	delta := max - min
	if max > 0 {
		s = delta / max
	}
	if delta == 0 {
		return 0, s, v
	}
	switch max {
	case rf:
		h = 60 * math.Mod((gf-bf)/delta, 6)
	case gf:
		h = 60 * ((bf-rf)/delta + 2)
	default:
		h = 60 * ((rf-gf)/delta + 4)
	}
	if h < 0 {
		h += 360
	}
	return h, s, v
}
