package pdfdoc

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Word is one text token with its layout box in top-left-origin points.
type Word struct {
	Text   string  `json:"text"`
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// PageWords holds the tokens and full extracted text of one page.
type PageWords struct {
	// Page is the zero-based page index.
	Page int `json:"page"`

	Words []Word `json:"words"`

	// Text is the page's plain text as extracted, with original spacing.
	Text string `json:"text"`
}

// Layout grouping thresholds, in points. Character runs on the same baseline
// (within rowTolerance) are merged into one word while the horizontal gap
// stays below wordGapFactor times the font size.
const (
	rowTolerance  = 2.5
	wordGapFactor = 0.3
)

// ExtractWords reads the text layer of the PDF at path and returns word
// tokens and plain text for every page. Pages without a text layer yield
// empty token lists, not errors. The content stream reader panics on
// malformed documents (unsupported filters, lex errors); those are recovered
// here and reported as an ordinary error.
func ExtractWords(path string) (pages []PageWords, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("malformed pdf %s: %v", path, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}
	defer f.Close()

	pages = make([]PageWords, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		pw := PageWords{Page: i - 1}
		if p.V.IsNull() {
			pages = append(pages, pw)
			continue
		}

		if text, err := p.GetPlainText(nil); err == nil {
			pw.Text = text
		}

		pw.Words = GroupWords(p.Content().Text, mediaBoxHeight(p))
		pages = append(pages, pw)
	}
	return pages, nil
}

// GroupWords assembles positioned character runs into word tokens. runs use
// the content-stream convention (bottom-origin baseline Y); pageHeight is
// needed to express the resulting boxes in top-origin layout units.
func GroupWords(runs []pdf.Text, pageHeight float64) []Word {
	texts := make([]pdf.Text, 0, len(runs))
	for _, t := range runs {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		texts = append(texts, t)
	}
	if len(texts) == 0 {
		return nil
	}

	// Top of page first (larger Y in bottom-origin space), then left to right.
	sort.SliceStable(texts, func(i, j int) bool {
		if texts[i].Y != texts[j].Y {
			return texts[i].Y > texts[j].Y
		}
		return texts[i].X < texts[j].X
	})

	var words []Word
	var cur []pdf.Text

	flush := func() {
		if len(cur) == 0 {
			return
		}
		words = append(words, wordFromRuns(cur, pageHeight))
		cur = nil
	}

	for _, t := range texts {
		if len(cur) == 0 {
			cur = append(cur, t)
			continue
		}

		prev := cur[len(cur)-1]
		sameRow := abs(t.Y-prev.Y) <= rowTolerance
		gap := t.X - (prev.X + prev.W)
		maxGap := wordGapFactor * maxFloat(prev.FontSize, t.FontSize)

		if sameRow && gap <= maxGap {
			cur = append(cur, t)
		} else {
			flush()
			cur = append(cur, t)
		}
	}
	flush()

	return words
}

// wordFromRuns computes the token text and bounding box for one group of
// character runs sharing a baseline.
func wordFromRuns(runs []pdf.Text, pageHeight float64) Word {
	var sb strings.Builder
	left := runs[0].X
	right := runs[0].X + runs[0].W
	baseline := runs[0].Y
	fontSize := runs[0].FontSize

	for _, t := range runs {
		sb.WriteString(t.S)
		if t.X < left {
			left = t.X
		}
		if t.X+t.W > right {
			right = t.X + t.W
		}
		if t.FontSize > fontSize {
			fontSize = t.FontSize
		}
	}

	return Word{
		Text:   sb.String(),
		Left:   left,
		Right:  right,
		Top:    pageHeight - baseline - fontSize,
		Bottom: pageHeight - baseline,
	}
}

// mediaBoxHeight resolves the page's media box height, walking up the page
// tree for inherited values. Defaults to US Letter when absent.
func mediaBoxHeight(p pdf.Page) float64 {
	v := p.V
	for !v.IsNull() {
		if mb := v.Key("MediaBox"); !mb.IsNull() && mb.Len() == 4 {
			return mb.Index(3).Float64() - mb.Index(1).Float64()
		}
		v = v.Key("Parent")
	}
	return 792
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
