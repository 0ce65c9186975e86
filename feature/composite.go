package feature

// Blue classification thresholds in HSV. Hue covers the blue band around 240
// degrees; the saturation and value floors reject gray and near-black pixels
// that have no meaningful hue.
const (
	blueHueLo         = 180.0
	blueHueHi         = 300.0
	blueSaturationMin = 0.2
	blueValueMin      = 0.2

	blueSceneTextureBins = 16
	blueSceneSpatialBins = 8
)

// BlueScene extracts the hand-designed composite for blue water/sky scenes as
// a 209-value vector:
//
//	[0]       fraction of pixels whose HSV falls in the blue band
//	[1..16]   16-bin gradient-magnitude texture histogram
//	[17..208] three 8x8 chromaticity histograms over equal horizontal bands
//	          (top, middle, bottom; the bottom band absorbs remainder rows)
//
// Each cue is low-dimensional on its own: global color dominance, smoothness,
// and vertical layout.
func BlueScene(img *Image) (Vector, error) {
	if err := validateImage(img); err != nil {
		return nil, err
	}

	blue := 0
	for row := 0; row < img.Rows; row++ {
		for col := 0; col < img.Cols; col++ {
			b, g, r := img.At(row, col)
			h, s, v := hsv(b, g, r)
			if h >= blueHueLo && h <= blueHueHi && s > blueSaturationMin && v > blueValueMin {
				blue++
			}
		}
	}

	texture, err := TextureHistogram(img, blueSceneTextureBins)
	if err != nil {
		return nil, err
	}

	out := make(Vector, 0, BlueSceneLen)
	out = append(out, float32(blue)/float32(img.Rows*img.Cols))
	out = append(out, texture...)

	band := img.Rows / blueSceneSpatialN
	for i := 0; i < blueSceneSpatialN; i++ {
		lo := i * band
		hi := lo + band
		if i == blueSceneSpatialN-1 {
			hi = img.Rows
		}
		spatial, err := chromaticityRegion(img, lo, hi, blueSceneSpatialBins)
		if err != nil {
			return nil, err
		}
		out = append(out, spatial...)
	}
	return out, nil
}
