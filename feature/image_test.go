package feature

import (
	"image"
	"image/color"
	"testing"
)

func TestFromImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	src.Set(1, 1, color.RGBA{R: 200, G: 150, B: 100, A: 255})

	img := FromImage(src)
	if img.Rows != 2 || img.Cols != 2 {
		t.Fatalf("dimensions = %dx%d, want 2x2", img.Cols, img.Rows)
	}
	if b, g, r := img.At(0, 0); b != 30 || g != 20 || r != 10 {
		t.Fatalf("pixel (0,0) = (%d,%d,%d), want BGR (30,20,10)", b, g, r)
	}
	if b, g, r := img.At(1, 1); b != 100 || g != 150 || r != 200 {
		t.Fatalf("pixel (1,1) = (%d,%d,%d), want BGR (100,150,200)", b, g, r)
	}
}

func TestImageEmpty(t *testing.T) {
	if !(&Image{}).Empty() {
		t.Fatal("zero Image should be empty")
	}
	if uniformImage(1, 1, 0, 0, 0).Empty() {
		t.Fatal("1x1 image should not be empty")
	}
	var nilImg *Image
	if !nilImg.Empty() {
		t.Fatal("nil Image should be empty")
	}
}
