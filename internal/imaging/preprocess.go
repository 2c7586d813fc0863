package imaging

import (
	"errors"
	"image"
	"image/color"
	"log"

	"github.com/anthonynsimon/bild/effect"
)

var (
	errInvalidWindow = errors.New("window must be odd and >= 3")
	errEmptyImage    = errors.New("empty image")
)

// Adaptive threshold parameters: the local mean is computed over a
// windowSize x windowSize neighborhood and lowered by thresholdBias before
// comparison. Tuned for 300 DPI scans of printed forms.
const (
	windowSize    = 11
	thresholdBias = 2
	medianRadius  = 3
)

// PrepareForOCR converts a rasterized page into a denoised binary image
// suitable for text recognition and line detection. If binarization fails
// the grayscale image is returned instead, so recognition still gets a
// usable input.
func PrepareForOCR(img image.Image) image.Image {
	gray := effect.Grayscale(img)
	denoised := effect.Median(gray, medianRadius)

	bin, err := AdaptiveThreshold(denoised, windowSize, thresholdBias)
	if err != nil {
		log.Printf("binarization failed, falling back to grayscale: %v", err)
		return gray
	}
	return bin
}

// AdaptiveThreshold binarizes an image against the mean of a local window:
// a pixel becomes white when its luminance exceeds the window mean minus
// bias, black otherwise. window must be odd and at least 3.
func AdaptiveThreshold(img image.Image, window, bias int) (*image.Gray, error) {
	if window < 3 || window%2 == 0 {
		return nil, errInvalidWindow
	}

	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if w == 0 || h == 0 {
		return nil, errEmptyImage
	}

	// Luminance plane plus a summed-area table for O(1) window means.
	lum := make([]float64, w*h)
	integral := make([]float64, (w+1)*(h+1))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			v := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
			lum[y*w+x] = v
			integral[(y+1)*(w+1)+(x+1)] = v +
				integral[y*(w+1)+(x+1)] +
				integral[(y+1)*(w+1)+x] -
				integral[y*(w+1)+x]
		}
	}

	half := window / 2
	out := image.NewGray(bounds)
	for y := 0; y < h; y++ {
		y0 := clampInt(y-half, 0, h-1)
		y1 := clampInt(y+half, 0, h-1)
		for x := 0; x < w; x++ {
			x0 := clampInt(x-half, 0, w-1)
			x1 := clampInt(x+half, 0, w-1)

			area := float64((x1 - x0 + 1) * (y1 - y0 + 1))
			sum := integral[(y1+1)*(w+1)+(x1+1)] -
				integral[y0*(w+1)+(x1+1)] -
				integral[(y1+1)*(w+1)+x0] +
				integral[y0*(w+1)+x0]
			mean := sum / area

			if lum[y*w+x] > mean-float64(bias) {
				out.SetGray(x+bounds.Min.X, y+bounds.Min.Y, color.Gray{Y: 255})
			} else {
				out.SetGray(x+bounds.Min.X, y+bounds.Min.Y, color.Gray{Y: 0})
			}
		}
	}
	return out, nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
