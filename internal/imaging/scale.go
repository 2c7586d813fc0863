package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// minRecognitionWidth is the raster width below which recognition accuracy
// drops off sharply for photographed forms.
const minRecognitionWidth = 1000

// UpscaleForRecognition doubles the resolution of small images so Tesseract
// has enough pixels per glyph to work with. Images at or above the minimum
// width are returned unchanged.
func UpscaleForRecognition(img image.Image) image.Image {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || b.Dx() >= minRecognitionWidth {
		return img
	}
	return imaging.Resize(img, b.Dx()*2, b.Dy()*2, imaging.Lanczos)
}
