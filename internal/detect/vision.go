package detect

import (
	"context"
	"fmt"
	"image"
	"log"

	"github.com/docutools/sigstamp/internal/geometry"
	"github.com/docutools/sigstamp/internal/imaging"
	"github.com/docutools/sigstamp/internal/keywords"
	"github.com/docutools/sigstamp/internal/ocr"
	"github.com/docutools/sigstamp/internal/pdfdoc"
)

// Recognizer produces word-level OCR results for a page image.
type Recognizer interface {
	RecognizeWords(img image.Image) ([]ocr.Word, error)
}

// Size of the stamp region proposed for a recognized label, and of the
// region proposed above a detected rule, in points.
const (
	stampWidthPt  = 120.0
	stampHeightPt = 45.0
	lineHeightPt  = 40.0
)

// lineScore ranks rule-derived candidates below any OCR keyword hit.
const lineScore = 0.45

// lineBoxHeightPx is the fixed pixel height mapped for a detected rule. The
// rule contributes its position and width; its own stroke thickness varies
// with scan quality and must not move the candidate.
const lineBoxHeightPx = 20

// reasonSnippetLen bounds how much matched text is echoed into a reason.
const reasonSnippetLen = 20

// VisionFinder proposes signature placements by rasterizing pages and
// running keyword OCR plus horizontal-rule detection over the pixels. It is
// the fallback for scanned documents whose text layer is empty or useless.
type VisionFinder struct {
	Engine  Recognizer
	Matcher *keywords.Matcher

	// DPI is the rasterization resolution.
	DPI int

	// MinWordConfidence rejects OCR words at or below this confidence
	// (0-100 scale).
	MinWordConfidence float64

	// DedupThreshold is passed through to Deduplicate.
	DedupThreshold float64
}

// NewVisionFinder returns a VisionFinder wired to a live OCR engine with
// default tuning.
func NewVisionFinder() *VisionFinder {
	return &VisionFinder{
		Engine:            ocr.NewEngine(),
		Matcher:           keywords.NewMatcher(),
		DPI:               pdfdoc.DefaultDPI,
		MinWordConfidence: 30,
		DedupThreshold:    DefaultDedupThreshold,
	}
}

// PassFailure records one contained degradation inside the vision pipeline:
// which pass gave up, on which page, and why. Page is -1 for document-level
// failures.
type PassFailure struct {
	Page int
	Pass string
	Err  error
}

// Report accumulates the degradations of one Find run, so callers and tests
// can see which stages contributed nothing without parsing logs.
type Report struct {
	Failures []PassFailure
}

// Degraded reports whether any pass failed during the run.
func (r Report) Degraded() bool { return len(r.Failures) > 0 }

func (r *Report) fail(page int, pass string, err error) {
	r.Failures = append(r.Failures, PassFailure{Page: page, Pass: pass, Err: err})
	log.Printf("vision: %s (page %d): %v", pass, page, err)
}

// Find runs the vision pipeline over every page of the document at path and
// returns deduplicated candidates ranked by descending score. Failures to
// read, rasterize, or recognize are logged and degrade to an empty result;
// the method never fails.
func (f *VisionFinder) Find(ctx context.Context, path string) []Candidate {
	candidates, _ := f.FindReport(ctx, path)
	return candidates
}

// FindReport is Find with the degradation report exposed. A document-level
// failure yields no candidates; a per-page pass failure removes only that
// pass's contribution for that page.
func (f *VisionFinder) FindReport(ctx context.Context, path string) ([]Candidate, Report) {
	var report Report

	info, err := pdfdoc.ReadInfo(path)
	if err != nil {
		report.fail(-1, "read", err)
		return nil, report
	}

	pages, err := pdfdoc.Rasterize(ctx, path, f.DPI)
	if err != nil {
		report.fail(-1, "rasterize", err)
		return nil, report
	}

	var candidates []Candidate
	for _, pg := range pages {
		if pg.Page >= len(info.Pages) {
			report.fail(pg.Page, "rasterize", fmt.Errorf("raster page beyond document page count %d", info.PageCount))
			continue
		}
		size := info.Pages[pg.Page]
		candidates = append(candidates, f.findOnPage(pg.Page, pg.Image, size, &report)...)
	}
	return Deduplicate(candidates, f.DedupThreshold), report
}

// findOnPage runs both detectors over a single rasterized page and maps
// their pixel hits into bottom-origin page coordinates.
func (f *VisionFinder) findOnPage(page int, img image.Image, size pdfdoc.PageSize, report *Report) []Candidate {
	prepared := imaging.PrepareForOCR(img)
	bounds := img.Bounds()
	imgW, imgH := bounds.Dx(), bounds.Dy()

	var candidates []Candidate

	words, err := f.Engine.RecognizeWords(prepared)
	if err != nil {
		report.fail(page, "ocr", err)
	}
	for _, w := range words {
		if w.Confidence <= f.MinWordConfidence || !f.Matcher.Matches(w.Text) {
			continue
		}

		box := geometry.ToPage(geometry.PixelRect{
			X:      float64(w.X),
			Y:      float64(w.Y),
			Width:  float64(w.Width),
			Height: float64(w.Height),
		}, imgW, imgH, size.Width, size.Height)

		score := w.Confidence / 100
		if score < 0.5 {
			score = 0.5
		}
		candidates = append(candidates, Candidate{
			Page:   page,
			X:      box.X,
			Y:      box.Y + box.Height/2 - stampHeightPt/2,
			Width:  stampWidthPt,
			Height: stampHeightPt,
			Score:  score,
			Reason: fmt.Sprintf("ocr: %s", snippet(w.Text)),
		})
	}

	for _, s := range DetectSignatureLines(prepared, img) {
		candidates = append(candidates, lineCandidate(page, s, imgW, imgH, size))
	}

	return candidates
}

// lineCandidate maps a detected rule into a placement candidate. A fixed
// lineBoxHeightPx-high pixel box anchored at the segment's top edge is
// mapped to page space; the emitted candidate keeps the mapped position and
// width with the standard rule-candidate height.
func lineCandidate(page int, s Segment, imgW, imgH int, size pdfdoc.PageSize) Candidate {
	top := s.Y1
	if s.Y2 < top {
		top = s.Y2
	}
	box := geometry.ToPage(geometry.PixelRect{
		X:      float64(s.X1),
		Y:      float64(top),
		Width:  float64(s.X2 - s.X1 + 1),
		Height: lineBoxHeightPx,
	}, imgW, imgH, size.Width, size.Height)

	return Candidate{
		Page:   page,
		X:      box.X,
		Y:      box.Y,
		Width:  box.Width,
		Height: lineHeightPt,
		Score:  lineScore,
		Reason: "line_detect",
	}
}

func snippet(s string) string {
	if len(s) > reasonSnippetLen {
		return s[:reasonSnippetLen]
	}
	return s
}
