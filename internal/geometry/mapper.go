package geometry

// PixelRect is a rectangle in raster pixel space (top-left origin,
// Y increasing downward). Coordinates are kept as float64 so sub-pixel
// positions survive round trips through page space.
type PixelRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PageRect is a rectangle in PDF page space (bottom-left origin,
// Y increasing upward, units in points).
type PageRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ToPage maps a pixel rectangle onto a page.
//
// imgW and imgH are the raster dimensions in pixels; pageW and pageH are the
// page dimensions in points. The horizontal axis is scaled directly. The
// vertical axis is scaled and inverted: the page Y of the result is the
// distance from the page bottom to the rectangle's bottom edge.
//
// If either image dimension is zero the scale factors are undefined; the
// rectangle's size is passed through unscaled at the page origin rather than
// dividing by zero.
func ToPage(r PixelRect, imgW, imgH int, pageW, pageH float64) PageRect {
	if imgW == 0 || imgH == 0 {
		return PageRect{X: 0, Y: 0, Width: r.Width, Height: r.Height}
	}

	scaleX := pageW / float64(imgW)
	scaleY := pageH / float64(imgH)

	return PageRect{
		X:      r.X * scaleX,
		Y:      pageH - (r.Y+r.Height)*scaleY,
		Width:  r.Width * scaleX,
		Height: r.Height * scaleY,
	}
}

// ToPixel maps a page rectangle back into pixel space. It is the exact
// inverse of ToPage for positive image and page dimensions.
//
// If either page dimension is zero the rectangle's size is passed through
// unscaled at the pixel origin.
func ToPixel(r PageRect, imgW, imgH int, pageW, pageH float64) PixelRect {
	if pageW == 0 || pageH == 0 {
		return PixelRect{X: 0, Y: 0, Width: r.Width, Height: r.Height}
	}

	scaleX := float64(imgW) / pageW
	scaleY := float64(imgH) / pageH

	return PixelRect{
		X:      r.X * scaleX,
		Y:      float64(imgH) - (r.Y+r.Height)*scaleY,
		Width:  r.Width * scaleX,
		Height: r.Height * scaleY,
	}
}
