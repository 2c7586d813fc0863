package ocr

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"
	"sync"

	"github.com/otiai10/gosseract/v2"

	"github.com/docutools/sigstamp/internal/imaging"
)

// Word is one recognized token with its pixel bounding box (top-left origin).
type Word struct {
	Text   string `json:"text"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`

	// Confidence is Tesseract's word confidence, 0-100. Unknown confidences
	// are reported as 0.
	Confidence float64 `json:"confidence"`
}

// Engine is a process-wide handle to the recognition engine. The zero value
// is not usable; construct with NewEngine and share the instance across
// requests. All methods are safe for concurrent use.
type Engine struct {
	// Language is the Tesseract language code, e.g. "eng".
	Language string

	// PageSegMode controls Tesseract's page segmentation. The default,
	// PSM_SINGLE_BLOCK, assumes one uniform block of text and behaves well on
	// full-page scans of forms.
	PageSegMode gosseract.PageSegMode

	initOnce sync.Once
	initErr  error
}

// NewEngine returns an Engine configured for English full-page recognition.
func NewEngine() *Engine {
	return &Engine{
		Language:    "eng",
		PageSegMode: gosseract.PSM_SINGLE_BLOCK,
	}
}

// ensureReady verifies once that the configured language data is available.
// Subsequent calls return the cached result.
func (e *Engine) ensureReady() error {
	e.initOnce.Do(func() {
		client := gosseract.NewClient()
		defer client.Close()
		if err := client.SetLanguage(e.Language); err != nil {
			e.initErr = fmt.Errorf("tesseract language %q unavailable: %w", e.Language, err)
		}
	})
	return e.initErr
}

// RecognizeWords runs word-level recognition over an in-memory image and
// returns every non-empty token with its bounding box and confidence.
func (e *Engine) RecognizeWords(img image.Image) ([]Word, error) {
	if err := e.ensureReady(); err != nil {
		return nil, err
	}

	tmpPath, err := writeTempPNG(img)
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmpPath)

	client, err := e.newClient()
	if err != nil {
		return nil, err
	}
	defer client.Close()

	if err := client.SetImage(tmpPath); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("recognition failed: %w", err)
	}

	words := make([]Word, 0, len(boxes))
	for _, b := range boxes {
		if strings.TrimSpace(b.Word) == "" {
			continue
		}
		words = append(words, Word{
			Text:       b.Word,
			X:          b.Box.Min.X,
			Y:          b.Box.Min.Y,
			Width:      b.Box.Dx(),
			Height:     b.Box.Dy(),
			Confidence: clampConfidence(b.Confidence),
		})
	}
	return words, nil
}

// RecognizeText returns the full recognized text of the image file at path.
// Small images are upscaled first so photographed forms recognize reliably.
func (e *Engine) RecognizeText(imagePath string) (string, error) {
	if err := e.ensureReady(); err != nil {
		return "", err
	}

	img, err := imaging.Load(imagePath)
	if err != nil {
		return "", err
	}

	tmpPath, err := writeTempPNG(imaging.UpscaleForRecognition(img))
	if err != nil {
		return "", err
	}
	defer os.Remove(tmpPath)

	client, err := e.newClient()
	if err != nil {
		return "", err
	}
	defer client.Close()

	if err := client.SetImage(tmpPath); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("recognition failed: %w", err)
	}
	return text, nil
}

// newClient builds a configured single-use gosseract client.
func (e *Engine) newClient() (*gosseract.Client, error) {
	client := gosseract.NewClient()
	if err := client.SetLanguage(e.Language); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetPageSegMode(e.PageSegMode); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set page segmentation mode: %w", err)
	}
	return client, nil
}

// clampConfidence maps Tesseract's "unknown" markers (negative values) to 0.
func clampConfidence(conf float64) float64 {
	if conf < 0 {
		return 0
	}
	return conf
}

// writeTempPNG saves an image to a temporary PNG file for Tesseract, which
// only accepts file paths. The caller removes the file after use.
func writeTempPNG(img image.Image) (string, error) {
	f, err := os.CreateTemp("", "sigstamp-ocr-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to encode temp image: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
