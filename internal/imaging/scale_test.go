package imaging

import (
	"image"
	"testing"
)

func TestUpscaleForRecognition(t *testing.T) {
	small := image.NewNRGBA(image.Rect(0, 0, 400, 300))
	out := UpscaleForRecognition(small)
	if b := out.Bounds(); b.Dx() != 800 || b.Dy() != 600 {
		t.Errorf("small image scaled to %dx%d, want 800x600", b.Dx(), b.Dy())
	}

	large := image.NewNRGBA(image.Rect(0, 0, 2400, 3000))
	if out := UpscaleForRecognition(large); out != image.Image(large) {
		t.Error("large image was not returned unchanged")
	}

	empty := image.NewNRGBA(image.Rect(0, 0, 0, 0))
	if out := UpscaleForRecognition(empty); out != image.Image(empty) {
		t.Error("empty image was not returned unchanged")
	}
}
