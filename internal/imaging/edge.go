package imaging

import (
	"image"
	"math"
)

// Default hysteresis thresholds for edge detection on binarized pages.
const (
	EdgeThresholdLow  = 50
	EdgeThresholdHigh = 150
)

// EdgeMap runs Canny-style edge detection and returns a boolean map indexed
// [y][x], true where an edge pixel was found. thresholdLow and thresholdHigh
// are the hysteresis bounds in 0-255 luminance units: gradients above the
// high bound are always edges, gradients between the bounds count only when
// connected to a strong edge.
func EdgeMap(img image.Image, thresholdLow, thresholdHigh int) [][]bool {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return nil
	}

	// Grayscale plane using BT.601 luminance weights.
	gray := make([][]float64, height)
	for y := 0; y < height; y++ {
		gray[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			rf := float64(r>>8) / 255.0
			gf := float64(g>>8) / 255.0
			bf := float64(b>>8) / 255.0
			gray[y][x] = 0.299*rf + 0.587*gf + 0.114*bf
		}
	}

	blurred := gaussianBlur(gray, width, height)

	// Sobel gradients.
	sobelX := [3][3]float64{{-1, 0, 1}, {-2, 0, 2}, {-1, 0, 1}}
	sobelY := [3][3]float64{{-1, -2, -1}, {0, 0, 0}, {1, 2, 1}}

	magnitude := make([][]float64, height)
	direction := make([][]float64, height)
	for y := 0; y < height; y++ {
		magnitude[y] = make([]float64, width)
		direction[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					py := clampInt(y+ky, 0, height-1)
					px := clampInt(x+kx, 0, width-1)
					gx += blurred[py][px] * sobelX[ky+1][kx+1]
					gy += blurred[py][px] * sobelY[ky+1][kx+1]
				}
			}
			magnitude[y][x] = math.Sqrt(gx*gx + gy*gy)
			direction[y][x] = math.Atan2(gy, gx)
		}
	}

	// Non-maximum suppression thins edges to single-pixel width.
	suppressed := make([][]float64, height)
	for y := 0; y < height; y++ {
		suppressed[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			if y == 0 || y == height-1 || x == 0 || x == width-1 {
				continue
			}

			angle := direction[y][x]
			mag := magnitude[y][x]

			var n1, n2 float64
			switch {
			case (angle >= -math.Pi/8 && angle < math.Pi/8) || angle >= 7*math.Pi/8 || angle < -7*math.Pi/8:
				n1, n2 = magnitude[y][x-1], magnitude[y][x+1]
			case (angle >= math.Pi/8 && angle < 3*math.Pi/8) || (angle >= -7*math.Pi/8 && angle < -5*math.Pi/8):
				n1, n2 = magnitude[y-1][x+1], magnitude[y+1][x-1]
			case (angle >= 3*math.Pi/8 && angle < 5*math.Pi/8) || (angle >= -5*math.Pi/8 && angle < -3*math.Pi/8):
				n1, n2 = magnitude[y-1][x], magnitude[y+1][x]
			default:
				n1, n2 = magnitude[y-1][x-1], magnitude[y+1][x+1]
			}

			if mag >= n1 && mag >= n2 {
				suppressed[y][x] = mag
			}
		}
	}

	// Hysteresis thresholding.
	lowThresh := float64(thresholdLow) / 255.0
	highThresh := float64(thresholdHigh) / 255.0

	edges := make([][]bool, height)
	for y := range edges {
		edges[y] = make([]bool, width)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			val := suppressed[y][x]
			if val >= highThresh {
				edges[y][x] = true
				continue
			}
			if val < lowThresh {
				continue
			}
			for ky := -1; ky <= 1 && !edges[y][x]; ky++ {
				for kx := -1; kx <= 1; kx++ {
					py := clampInt(y+ky, 0, height-1)
					px := clampInt(x+kx, 0, width-1)
					if suppressed[py][px] >= highThresh {
						edges[y][x] = true
						break
					}
				}
			}
		}
	}
	return edges
}

// gaussianBlur applies a 5x5 Gaussian kernel (sigma ~1.4, sum 273) with
// replicated borders to reduce noise before gradient computation.
func gaussianBlur(img [][]float64, width, height int) [][]float64 {
	kernel := [5][5]float64{
		{1, 4, 7, 4, 1},
		{4, 16, 26, 16, 4},
		{7, 26, 41, 26, 7},
		{4, 16, 26, 16, 4},
		{1, 4, 7, 4, 1},
	}
	const kernelSum = 273.0

	result := make([][]float64, height)
	for y := 0; y < height; y++ {
		result[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			var sum float64
			for ky := -2; ky <= 2; ky++ {
				for kx := -2; kx <= 2; kx++ {
					py := clampInt(y+ky, 0, height-1)
					px := clampInt(x+kx, 0, width-1)
					sum += img[py][px] * kernel[ky+2][kx+2]
				}
			}
			result[y][x] = sum / kernelSum
		}
	}
	return result
}
