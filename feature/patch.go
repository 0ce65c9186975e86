package feature

import "fmt"

const (
	patchSize  = 7
	patchReach = patchSize / 2

	// CenterPatchLen is the length of a center-patch vector:
	// 7x7 pixels, 3 samples each.
	CenterPatchLen = patchSize * patchSize * 3
)

// CenterPatch extracts the 7x7 pixel block centered on the image as a
// 147-value vector. Pixels are emitted in raster order, each contributing its
// B, G, R samples consecutively. The center is located by integer division,
// so for even dimensions the block sits one pixel toward the bottom-right.
func CenterPatch(img *Image) (Vector, error) {
	if err := validateImage(img); err != nil {
		return nil, err
	}
	if img.Rows < patchSize || img.Cols < patchSize {
		return nil, fmt.Errorf("feature: %w: %dx%d, need at least %dx%d",
			ErrImageTooSmall, img.Cols, img.Rows, patchSize, patchSize)
	}
	centerRow := img.Rows / 2
	centerCol := img.Cols / 2
	out := make(Vector, 0, CenterPatchLen)
	for row := centerRow - patchReach; row <= centerRow+patchReach; row++ {
		for col := centerCol - patchReach; col <= centerCol+patchReach; col++ {
			b, g, r := img.At(row, col)
			out = append(out, float32(b), float32(g), float32(r))
		}
	}
	return out, nil
}
