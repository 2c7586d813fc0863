package detect

import (
	"image"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/docutools/sigstamp/internal/imaging"
)

// Segment is a near-horizontal line segment in pixel coordinates
// (top-left origin), with Y1 and Y2 within maxRisePx of each other.
type Segment struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Tuning for the horizontal-rule scan. Values are in pixels of the
// rasterized page.
const (
	// minLineLengthPx is the shortest run accepted as a signature rule.
	minLineLengthPx = 100

	// maxLineGapPx is the widest break a run may bridge, so dashed or
	// slightly broken rules still connect.
	maxLineGapPx = 10

	// maxRisePx bounds the total vertical deviation over a run. Anything
	// steeper is not a horizontal rule.
	maxRisePx = 10

	// maxInkLightness is the CIE Lab lightness (0..1) above which a run
	// midpoint is considered too faint to be drawn ink.
	maxInkLightness = 0.5
)

// DetectSignatureLines finds long, near-horizontal ruled lines of the kind
// printed under a signature field. prepared is the binarized page used for
// edge detection; src is the original raster, sampled to reject runs that
// follow faint artifacts rather than drawn ink. Returned segments are in
// pixel coordinates of the raster.
func DetectSignatureLines(prepared, src image.Image) []Segment {
	edges := imaging.EdgeMap(prepared, imaging.EdgeThresholdLow, imaging.EdgeThresholdHigh)
	if edges == nil {
		return nil
	}

	segments := horizontalRuns(edges)

	out := segments[:0]
	for _, s := range segments {
		if isInkDark(src, (s.X1+s.X2)/2, (s.Y1+s.Y2)/2) {
			out = append(out, s)
		}
	}
	return out
}

// horizontalRuns walks the edge map row by row, following each run of edge
// pixels to the right. A run may drift up or down one pixel per column and
// bridge gaps up to maxLineGapPx, but its total rise from the starting row
// is capped at maxRisePx. Consumed pixels are marked so overlapping rows do
// not report the same rule twice.
func horizontalRuns(edges [][]bool) []Segment {
	height := len(edges)
	if height == 0 {
		return nil
	}
	width := len(edges[0])

	used := make([][]bool, height)
	for y := range used {
		used[y] = make([]bool, width)
	}

	var segments []Segment
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !edges[y][x] || used[y][x] {
				continue
			}

			startX, startY := x, y
			curY := y
			endX, endY := x, y
			gap := 0

			for nx := x + 1; nx < width; nx++ {
				ny, ok := followRow(edges, nx, curY, startY)
				if !ok {
					gap++
					if gap > maxLineGapPx {
						break
					}
					continue
				}
				gap = 0
				curY = ny
				endX, endY = nx, ny
				used[ny][nx] = true
			}
			used[startY][startX] = true

			if endX-startX+1 >= minLineLengthPx {
				segments = append(segments, Segment{X1: startX, Y1: startY, X2: endX, Y2: endY})
			}
		}
	}
	return segments
}

// followRow finds the edge pixel in column x closest to prevY, allowing one
// pixel of local drift, as long as it stays within maxRisePx of the run's
// starting row.
func followRow(edges [][]bool, x, prevY, startY int) (int, bool) {
	for _, dy := range [...]int{0, -1, 1} {
		y := prevY + dy
		if y < 0 || y >= len(edges) {
			continue
		}
		if abs(y-startY) > maxRisePx {
			continue
		}
		if edges[y][x] {
			return y, true
		}
	}
	return 0, false
}

// isInkDark reports whether the pixel at (x, y) is dark enough to be drawn
// ink, judged by its CIE Lab lightness.
func isInkDark(src image.Image, x, y int) bool {
	if src == nil {
		return true
	}
	bounds := src.Bounds()
	px := clampInt(x+bounds.Min.X, bounds.Min.X, bounds.Max.X-1)
	py := clampInt(y+bounds.Min.Y, bounds.Min.Y, bounds.Max.Y-1)

	c, ok := colorful.MakeColor(color.NRGBAModel.Convert(src.At(px, py)))
	if !ok {
		return false
	}
	l, _, _ := c.Lab()
	return l < maxInkLightness
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
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
