// Package detect locates candidate regions for placing a signature on a
// document.
//
// # Detection Paths
//
// Two independent finders produce candidates:
//
//   - TextFinder works purely on the document's text layer: any word token
//     the keyword matcher flags as signature-related becomes a SignatureBox
//     padded to leave room for a handwritten signature below the label. It
//     also collects signer email addresses from the extracted text.
//   - VisionFinder rasterizes each page and runs two passes over it: a
//     recognition pass (OCR words filtered by confidence and the same
//     keyword matcher) and a visual pass that looks for the long, dark,
//     near-horizontal rules typically printed under "sign here".
//
// Both paths feed Deduplicate, which collapses near-coincident candidates
// on the same page and establishes the descending-score ranking consumed by
// the overlay renderer.
//
// # Degradation
//
// Finders never propagate failures upward. An unreadable document yields an
// empty candidate list; a recognition or preprocessing failure on one page
// removes only that page's contribution from the failing pass. An empty
// result is a legitimate outcome ("nothing to stamp"), not an error.
//
// # Scores
//
// Candidate scores live in [0,1] and are comparable across paths:
//
//   - recognition hits score max(0.5, confidence/100)
//   - detected signature lines score a fixed 0.45
//   - text-layer hits score a fixed 0.5
//
// so a confident OCR hit outranks a bare line, and ties break by detection
// order.
package detect
