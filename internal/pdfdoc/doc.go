// Package pdfdoc provides read access to PDF documents for the detection
// pipeline: page structure, text layout, and rasterization.
//
// # Capabilities
//
//   - ReadInfo: page count and per-page media box dimensions in points,
//     via pdfcpu.
//   - ExtractWords: the text layer as word tokens with layout boxes, plus
//     the full extracted text per page, via the pdf content stream reader.
//   - Rasterize: each page rendered to an in-memory image at a chosen DPI,
//     via the poppler pdftoppm tool.
//   - ImageToPDF: a raster image wrapped into a single-page PDF.
//
// # Coordinate Systems
//
// Word token boxes use text-layout units: points, origin at the top-left
// corner of the page, Y increasing downward (Top < Bottom). This matches the
// convention the detection heuristics were tuned against. The page content
// stream itself stores bottom-origin coordinates; the conversion happens here
// using the page's media box height.
//
// # External Tools
//
// Rasterize shells out to pdftoppm and requires it on PATH (poppler-utils on
// Debian/Ubuntu, poppler on macOS). The call honors context cancellation, so
// callers should impose a timeout appropriate for the document size.
package pdfdoc
