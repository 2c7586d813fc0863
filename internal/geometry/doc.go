// Package geometry converts rectangles between raster pixel space and PDF
// page space.
//
// # Coordinate Systems
//
// Two coordinate systems are involved when placing content found in a
// rasterized page back onto the PDF it came from:
//
//   - Pixel space: the rasterized image convention. Origin (0,0) at the
//     top-left corner, X increasing rightward, Y increasing downward.
//   - Page space: the PDF convention. Origin (0,0) at the bottom-left corner
//     of the page, X increasing rightward, Y increasing upward, units in
//     points (1/72 inch).
//
// Converting between the two requires scaling by the ratio of page size to
// image size and inverting the vertical axis. Getting the inversion wrong
// places overlays mirrored around the horizontal center line, so ToPage and
// ToPixel are kept exact inverses of each other (up to floating-point
// rounding).
//
// All functions in this package are pure and stateless.
package geometry
