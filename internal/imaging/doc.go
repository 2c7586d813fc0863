// Package imaging prepares rasterized document pages for recognition.
//
// The preprocessing chain mirrors what works well for printed forms:
// grayscale conversion, a median blur to knock out scanner noise, and an
// adaptive (locally thresholded) binarization that copes with uneven page
// illumination. A failure anywhere in the chain degrades to the plain
// grayscale image rather than failing the page.
//
// The package also produces binary edge maps (Canny-style) that the line
// detector consumes when searching for printed signature rules, and a small
// image loader used by the tool surface.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner,
// X increasing rightward and Y increasing downward. Edge maps are indexed
// [y][x] relative to the image's bounds origin.
//
// # Thread Safety
//
// All functions are stateless and safe to call concurrently on different
// images.
package imaging
