package embedding

import (
	"fmt"
	"image"

	"github.com/nfnt/resize"
)

// Network input contract of the reference service: 224x224 RGB planes,
// channels mean-subtracted (ImageNet means in R,G,B order) and scaled by
// 1/255 then 1/0.226.
const (
	InputSize = 224

	inputScale = (1.0 / 255.0) * (1.0 / 0.226)
	meanR      = 124.0
	meanG      = 116.0
	meanB      = 104.0
)

// Preprocess converts a decoded image into the NCHW float32 tensor the
// reference embedding network consumes: bilinear resize to 224x224, mean
// subtraction, scaling, and R,G,B plane order. The result has
// 3*224*224 values.
func Preprocess(img image.Image) ([]float32, error) {
	if img == nil {
		return nil, fmt.Errorf("embedding: nil image")
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("embedding: empty image")
	}

	resized := resize.Resize(InputSize, InputSize, img, resize.Bilinear)
	plane := InputSize * InputSize
	out := make([]float32, 3*plane)
	rb := resized.Bounds()
	i := 0
	for y := rb.Min.Y; y < rb.Max.Y; y++ {
		for x := rb.Min.X; x < rb.Max.X; x++ {
			r, g, b, _ := resized.At(x, y).RGBA()
			out[i] = (float32(r>>8) - meanR) * inputScale
			out[plane+i] = (float32(g>>8) - meanG) * inputScale
			out[2*plane+i] = (float32(b>>8) - meanB) * inputScale
			i++
		}
	}
	return out, nil
}
