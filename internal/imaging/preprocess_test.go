package imaging

import (
	"image"
	"image/color"
	"testing"
)

func solidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestAdaptiveThreshold_Binary(t *testing.T) {
	// Dark text stroke on white background.
	img := solidImage(40, 40, color.White)
	for x := 5; x < 35; x++ {
		img.Set(x, 20, color.Black)
	}

	bin, err := AdaptiveThreshold(img, 11, 2)
	if err != nil {
		t.Fatalf("AdaptiveThreshold failed: %v", err)
	}

	sawBlack := false
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			v := bin.GrayAt(x, y).Y
			if v != 0 && v != 255 {
				t.Fatalf("pixel (%d,%d) = %d, want 0 or 255", x, y, v)
			}
			if v == 0 {
				sawBlack = true
			}
		}
	}
	if !sawBlack {
		t.Error("stroke pixels were not binarized to black")
	}
	if bin.GrayAt(20, 20).Y != 0 {
		t.Error("stroke center should be black")
	}
	if bin.GrayAt(2, 2).Y != 255 {
		t.Error("background corner should be white")
	}
}

func TestAdaptiveThreshold_UniformImageStaysWhite(t *testing.T) {
	// With no contrast, every pixel sits above mean-bias and stays white.
	bin, err := AdaptiveThreshold(solidImage(20, 20, color.Gray{Y: 128}), 11, 2)
	if err != nil {
		t.Fatalf("AdaptiveThreshold failed: %v", err)
	}
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if bin.GrayAt(x, y).Y != 255 {
				t.Fatalf("pixel (%d,%d) = %d, want 255", x, y, bin.GrayAt(x, y).Y)
			}
		}
	}
}

func TestAdaptiveThreshold_InvalidWindow(t *testing.T) {
	img := solidImage(10, 10, color.White)
	for _, window := range []int{0, 1, 2, 4, 10} {
		if _, err := AdaptiveThreshold(img, window, 2); err == nil {
			t.Errorf("window %d: expected error", window)
		}
	}
}

func TestAdaptiveThreshold_EmptyImage(t *testing.T) {
	if _, err := AdaptiveThreshold(image.NewRGBA(image.Rect(0, 0, 0, 0)), 11, 2); err == nil {
		t.Error("expected error for empty image")
	}
}

func TestPrepareForOCR_ReturnsUsableImage(t *testing.T) {
	img := solidImage(30, 30, color.White)
	for x := 0; x < 30; x++ {
		img.Set(x, 15, color.Black)
	}

	out := PrepareForOCR(img)
	if out == nil {
		t.Fatal("PrepareForOCR returned nil")
	}
	if out.Bounds().Dx() != 30 || out.Bounds().Dy() != 30 {
		t.Errorf("bounds changed: %v", out.Bounds())
	}
}

func TestPrepareForOCR_EmptyImageFallsBack(t *testing.T) {
	// Binarization rejects an empty image; the grayscale fallback must still
	// come back instead of a panic or nil.
	out := PrepareForOCR(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	if out == nil {
		t.Fatal("PrepareForOCR returned nil for empty image")
	}
}
