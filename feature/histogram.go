package feature

import "fmt"

// ChromaticityHistogram computes a normalized 2-D rg-chromaticity histogram
// over the whole image and flattens it row-major (r bin outer, g bin inner)
// into a bins*bins vector.
//
// Chromaticity divides each channel by the pixel's total intensity, which
// removes the lighting dependence of raw RGB. Pixels whose channel sum is
// below 1 are skipped to avoid division by zero, and the histogram is
// normalized by the number of counted pixels, not the total pixel count. An
// image of only near-black pixels therefore yields an all-zero histogram.
func ChromaticityHistogram(img *Image, bins int) (Vector, error) {
	if err := validateImage(img); err != nil {
		return nil, err
	}
	return chromaticityRegion(img, 0, img.Rows, bins)
}

// chromaticityRegion computes the chromaticity histogram over rows
// [rowLo, rowHi). An empty row range yields an all-zero histogram.
func chromaticityRegion(img *Image, rowLo, rowHi, bins int) (Vector, error) {
	if bins < 1 {
		return nil, fmt.Errorf("feature: histogram bins must be positive, got %d", bins)
	}
	hist := make(Vector, bins*bins)
	counted := 0
	for row := rowLo; row < rowHi; row++ {
		for col := 0; col < img.Cols; col++ {
			b, g, r := img.At(row, col)
			sum := int(r) + int(g) + int(b)
			if sum < 1 {
				continue
			}
			rBin := chromaticityBin(float64(r)/float64(sum), bins)
			gBin := chromaticityBin(float64(g)/float64(sum), bins)
			hist[rBin*bins+gBin]++
			counted++
		}
	}
	if counted > 0 {
		n := float32(counted)
		for i := range hist {
			hist[i] /= n
		}
	}
	return hist, nil
}

// chromaticityBin maps a value in [0,1] to an equal-width bucket, folding the
// boundary value 1.0 into the last bin.
func chromaticityBin(v float64, bins int) int {
	bin := int(v * float64(bins))
	if bin >= bins {
		bin = bins - 1
	}
	return bin
}

// SplitHistogram computes independent chromaticity histograms over the top
// half (rows [0, rows/2)) and the bottom half of the image and concatenates
// them top first. The result has 2*bins*bins values and preserves the coarse
// vertical layout a whole-image histogram discards.
func SplitHistogram(img *Image, bins int) (Vector, error) {
	if err := validateImage(img); err != nil {
		return nil, err
	}
	mid := img.Rows / 2
	top, err := chromaticityRegion(img, 0, mid, bins)
	if err != nil {
		return nil, err
	}
	bottom, err := chromaticityRegion(img, mid, img.Rows, bins)
	if err != nil {
		return nil, err
	}
	out := make(Vector, 0, len(top)+len(bottom))
	out = append(out, top...)
	out = append(out, bottom...)
	return out, nil
}
