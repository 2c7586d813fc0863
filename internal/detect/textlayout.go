package detect

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/docutools/sigstamp/internal/keywords"
	"github.com/docutools/sigstamp/internal/pdfdoc"
)

// Padding applied around a matched label to form a SignatureBox, in layout
// units. The generous bottom padding leaves room for a handwritten-style
// signature below the label.
const (
	padLeft   = 5.0
	padTop    = 4.0
	padBottom = 45.0
)

// TextScore is the fixed score assigned to text-layer candidates, which
// carry no recognition confidence.
const TextScore = 0.5

var emailRE = regexp.MustCompile(`[\w.\-]+@[\w.\-]+\.\w+`)

// FindEmails extracts email addresses from text, deduplicated
// case-insensitively in first-seen order.
func FindEmails(text string) []string {
	return appendEmails(nil, map[string]bool{}, text)
}

func appendEmails(emails []string, seen map[string]bool, text string) []string {
	for _, em := range emailRE.FindAllString(text, -1) {
		key := strings.ToLower(em)
		if seen[key] {
			continue
		}
		seen[key] = true
		emails = append(emails, em)
	}
	return emails
}

// TextFinder locates signature regions using only the document's text layer.
type TextFinder struct {
	Matcher *keywords.Matcher
}

// NewTextFinder returns a TextFinder with the default keyword matcher.
func NewTextFinder() *TextFinder {
	return &TextFinder{Matcher: keywords.NewMatcher()}
}

// Scan reads the document's text layer and returns signer email addresses
// and signature-related label regions. Emails are deduplicated
// case-insensitively across the whole document in first-seen order. Unlike
// FindEmailsAndRegions, a parse failure is returned to the caller.
func (f *TextFinder) Scan(path string) ([]string, []SignatureBox, error) {
	pages, err := pdfdoc.ExtractWords(path)
	if err != nil {
		return nil, nil, fmt.Errorf("text layer extraction failed for %s: %w", path, err)
	}
	emails, boxes := f.scanPages(pages)
	return emails, boxes, nil
}

// FindEmailsAndRegions is the degrading form of Scan: a parse failure is
// logged and yields empty results, never an error upward.
func (f *TextFinder) FindEmailsAndRegions(path string) ([]string, []SignatureBox) {
	emails, boxes, err := f.Scan(path)
	if err != nil {
		log.Printf("%v", err)
		return nil, nil
	}
	return emails, boxes
}

// scanPages applies the email and keyword scans to already-extracted pages.
func (f *TextFinder) scanPages(pages []pdfdoc.PageWords) ([]string, []SignatureBox) {
	var emails []string
	seen := map[string]bool{}
	var boxes []SignatureBox

	for _, pg := range pages {
		emails = appendEmails(emails, seen, pg.Text)

		for _, w := range pg.Words {
			emails = appendEmails(emails, seen, w.Text)

			if f.Matcher.Matches(w.Text) {
				boxes = append(boxes, SignatureBox{
					Page:   pg.Page,
					X0:     w.Left - padLeft,
					X1:     w.Right,
					Top:    w.Top - padTop,
					Bottom: w.Bottom + padBottom,
				})
			}
		}
	}
	return emails, boxes
}
