package feature

import (
	"fmt"
	"math"
)

// Luma weights for combining B,G,R gradient magnitudes into one intensity.
const (
	lumaB = 0.114
	lumaG = 0.587
	lumaR = 0.299
)

// TextureHistogram computes a normalized histogram of gradient magnitudes over
// bins equal-width buckets covering the 0..255 intensity range.
//
// The gradient field comes from separable 3x3 directional derivative filters:
// a [-1,0,1] difference in one axis composed with a [1,2,1]/4 smoothing in the
// other, with borders replicated from the nearest interior row or column. The
// two directional responses combine per channel as sqrt(gx*gx+gy*gy) clamped
// to 255, then the channels collapse to a single luma-weighted intensity. The
// histogram is normalized by the total pixel count.
func TextureHistogram(img *Image, bins int) (Vector, error) {
	if err := validateImage(img); err != nil {
		return nil, err
	}
	if bins < 1 {
		return nil, fmt.Errorf("feature: texture bins must be positive, got %d", bins)
	}
	gx, gy := gradients(img)
	hist := make(Vector, bins)
	n := img.Rows * img.Cols
	for p := 0; p < n; p++ {
		var intensity float64
		for ch := 0; ch < 3; ch++ {
			i := p*3 + ch
			mag := math.Sqrt(float64(gx[i])*float64(gx[i]) + float64(gy[i])*float64(gy[i]))
			if mag > 255 {
				mag = 255
			}
			switch ch {
			case 0:
				intensity += lumaB * mag
			case 1:
				intensity += lumaG * mag
			case 2:
				intensity += lumaR * mag
			}
		}
		bin := int(intensity * float64(bins) / 256)
		if bin >= bins {
			bin = bins - 1
		}
		hist[bin]++
	}
	for i := range hist {
		hist[i] /= float32(n)
	}
	return hist, nil
}

// gradients returns the signed horizontal and vertical derivative responses
// per pixel and channel, each rows*cols*3 long in the image's interleaved
// layout. Derivatives exist only where both neighbors do; the border ring
// carries a copy of the adjacent interior gradient instead of a one-sided
// derivative of its own. Images thinner than 3 pixels in either axis have no
// interior and come back all zero.
func gradients(img *Image) (gx, gy []float32) {
	rows, cols := img.Rows, img.Cols
	size := rows * cols * 3
	gx = make([]float32, size)
	gy = make([]float32, size)
	dx := make([]float32, size)
	dy := make([]float32, size)

	at := func(row, col, ch int) float32 {
		return float32(img.Pix[(row*cols+col)*3+ch])
	}

	// Difference pass: [-1,0,1] across interior columns for dx, across
	// interior rows for dy.
	for row := 0; row < rows; row++ {
		for col := 1; col < cols-1; col++ {
			base := (row*cols + col) * 3
			for ch := 0; ch < 3; ch++ {
				dx[base+ch] = at(row, col+1, ch) - at(row, col-1, ch)
			}
		}
	}
	for row := 1; row < rows-1; row++ {
		for col := 0; col < cols; col++ {
			base := (row*cols + col) * 3
			for ch := 0; ch < 3; ch++ {
				dy[base+ch] = at(row+1, col, ch) - at(row-1, col, ch)
			}
		}
	}

	// Smoothing pass: [1,2,1]/4 along the opposite axis, interior pixels only.
	for row := 1; row < rows-1; row++ {
		for col := 1; col < cols-1; col++ {
			base := (row*cols + col) * 3
			for ch := 0; ch < 3; ch++ {
				gx[base+ch] = (dx[((row-1)*cols+col)*3+ch] + 2*dx[base+ch] + dx[((row+1)*cols+col)*3+ch]) / 4
				gy[base+ch] = (dy[(row*cols+col-1)*3+ch] + 2*dy[base+ch] + dy[(row*cols+col+1)*3+ch]) / 4
			}
		}
	}

	// Border ring: replicate the nearest interior row, then the nearest
	// interior column, so corners end up with the diagonal interior value.
	if rows < 3 || cols < 3 {
		return gx, gy
	}
	stride := cols * 3
	for _, g := range [2][]float32{gx, gy} {
		copy(g[:stride], g[stride:2*stride])
		copy(g[(rows-1)*stride:], g[(rows-2)*stride:(rows-1)*stride])
		for row := 0; row < rows; row++ {
			base := row * stride
			for ch := 0; ch < 3; ch++ {
				g[base+ch] = g[base+3+ch]
				g[base+(cols-1)*3+ch] = g[base+(cols-2)*3+ch]
			}
		}
	}
	return gx, gy
}

// ColorTexture concatenates a whole-image chromaticity histogram with a
// gradient-magnitude texture histogram. The result has
// colorBins*colorBins+textureBins values; how the two parts are weighted is
// decided at the distance stage, not here.
func ColorTexture(img *Image, colorBins, textureBins int) (Vector, error) {
	color, err := ChromaticityHistogram(img, colorBins)
	if err != nil {
		return nil, err
	}
	texture, err := TextureHistogram(img, textureBins)
	if err != nil {
		return nil, err
	}
	out := make(Vector, 0, len(color)+len(texture))
	out = append(out, color...)
	out = append(out, texture...)
	return out, nil
}
