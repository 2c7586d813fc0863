// Package ocr wraps the Tesseract engine (via gosseract/v2) behind an
// injectable Engine handle.
//
// # Engine Lifecycle
//
// Construct one Engine per process with NewEngine and pass it to every
// component that needs recognition. Language data availability is verified
// once, on first use, behind a sync.Once guard; the expensive model files are
// loaded by Tesseract itself and shared by the OS across clients. Each
// recognition call uses its own short-lived gosseract client, because clients
// are not safe for concurrent use. The Engine therefore is.
//
// # Prerequisites
//
// Tesseract and the language data must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// # Confidence Scores
//
// Word confidences are reported on Tesseract's native 0-100 scale. Values the
// engine reports as unknown (negative) are clamped to 0 so callers can apply
// a simple floor.
package ocr
