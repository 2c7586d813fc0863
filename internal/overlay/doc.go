// Package overlay renders a signature image onto detected placement
// rectangles of a PDF document. The original pages are imported as
// templates and the signature is drawn on top, so page count, ordering and
// underlying content are preserved. When rendering is impossible the
// package degrades to returning the unmodified source bytes.
package overlay
