package overlay

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"codeberg.org/go-pdf/fpdf"
	"codeberg.org/go-pdf/fpdf/contrib/gofpdi"

	"github.com/docutools/sigstamp/internal/detect"
	"github.com/docutools/sigstamp/internal/pdfdoc"
)

// Default fallback box, anchored near the bottom-right corner of the first
// page, used by the text-heuristic path when no label was found there.
const (
	fallbackInsetX0 = 200.0
	fallbackInsetX1 = 20.0
	fallbackInsetY0 = 200.0
	fallbackInsetY1 = 100.0
)

// Render stamps the signature image at signaturePath into the candidate
// rectangles of the document at docPath and returns the resulting document
// bytes. With pickFirst set, only the top-scored candidate of each page is
// stamped; otherwise all of them are. Pages without candidates pass through
// unmodified.
//
// A render failure of any kind is logged and degrades to the original
// document bytes. Only when the source document itself cannot be read does
// Render return an error.
func Render(docPath, signaturePath string, candidates []detect.Candidate, pickFirst bool) ([]byte, error) {
	original, err := os.ReadFile(docPath)
	if err != nil {
		return nil, fmt.Errorf("reading document %s: %w", docPath, err)
	}

	out, err := render(original, docPath, signaturePath, candidates, pickFirst)
	if err != nil {
		log.Printf("overlay render failed for %s, returning original document: %v", docPath, err)
		return original, nil
	}
	return out, nil
}

func render(original []byte, docPath, signaturePath string, candidates []detect.Candidate, pickFirst bool) (out []byte, err error) {
	// The page importer panics rather than erroring on documents its parser
	// rejects, even ones the dimensions reader accepted.
	defer recoverAsError(&err)

	info, err := pdfdoc.ReadInfo(docPath)
	if err != nil {
		return nil, err
	}

	byPage := groupByPage(candidates, info.PageCount, pickFirst)

	pdf := fpdf.New("P", "pt", "", "")
	importer := gofpdi.NewImporter()
	rs := io.ReadSeeker(bytes.NewReader(original))
	opts := fpdf.ImageOptions{ReadDpi: false, ImageType: imageType(signaturePath)}

	for page := 0; page < info.PageCount; page++ {
		size := info.Pages[page]
		pdf.AddPageFormat("P", fpdf.SizeType{Wd: size.Width, Ht: size.Height})

		tpl := importer.ImportPageFromStream(pdf, &rs, page+1, "/MediaBox")
		importer.UseImportedTemplate(pdf, tpl, 0, 0, size.Width, 0)

		for _, c := range byPage[page] {
			pdf.ImageOptions(signaturePath, c.X, drawOrigin(size.Height, c), c.Width, c.Height, false, opts, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// StampTextHeuristic is the text-layer-only signing path. It scans the
// document for signature labels and signer emails, stamps the top label
// region of each page, and falls back to a fixed box near the bottom-right
// corner of the first page when that page carries no label. It returns the
// stamped document bytes along with any emails found.
func StampTextHeuristic(docPath, signaturePath string) ([]byte, []string, error) {
	emails, boxes := detect.NewTextFinder().FindEmailsAndRegions(docPath)

	var candidates []detect.Candidate
	info, err := pdfdoc.ReadInfo(docPath)
	if err != nil {
		log.Printf("stamp: reading page sizes of %s: %v", docPath, err)
	} else {
		candidates = heuristicCandidates(boxes, info)
	}

	out, err := Render(docPath, signaturePath, candidates, true)
	if err != nil {
		return nil, nil, err
	}
	return out, emails, nil
}

// heuristicCandidates converts label boxes into candidates and appends the
// first-page fallback box when no label landed on page 0.
func heuristicCandidates(boxes []detect.SignatureBox, info *pdfdoc.Info) []detect.Candidate {
	firstPageCovered := false
	for _, b := range boxes {
		if b.Page == 0 {
			firstPageCovered = true
			break
		}
	}
	if !firstPageCovered && info.PageCount > 0 {
		size := info.Pages[0]
		boxes = append(boxes, detect.SignatureBox{
			Page:   0,
			X0:     size.Width - fallbackInsetX0,
			X1:     size.Width - fallbackInsetX1,
			Top:    size.Height - fallbackInsetY0,
			Bottom: size.Height - fallbackInsetY1,
		})
	}

	candidates := make([]detect.Candidate, 0, len(boxes))
	for _, b := range boxes {
		if b.Page < 0 || b.Page >= info.PageCount {
			continue
		}
		candidates = append(candidates, b.ToCandidate(info.Pages[b.Page].Height, detect.TextScore, "text_layout"))
	}
	return candidates
}

// groupByPage buckets valid candidates by page, ordered by descending
// score within each bucket. Invalid candidates and candidates beyond the
// document's page range are logged and skipped.
func groupByPage(candidates []detect.Candidate, pageCount int, pickFirst bool) map[int][]detect.Candidate {
	byPage := make(map[int][]detect.Candidate)
	for _, c := range candidates {
		if err := c.Validate(); err != nil {
			log.Printf("overlay: skipping candidate: %v", err)
			continue
		}
		if c.Page >= pageCount {
			log.Printf("overlay: skipping candidate on page %d of a %d-page document", c.Page, pageCount)
			continue
		}
		byPage[c.Page] = append(byPage[c.Page], c)
	}

	for page, list := range byPage {
		sort.SliceStable(list, func(i, j int) bool { return list[i].Score > list[j].Score })
		if pickFirst {
			byPage[page] = list[:1]
		}
	}
	return byPage
}

// drawOrigin converts a candidate's bottom-origin Y into the top-origin Y
// expected by the renderer.
func drawOrigin(pageHeight float64, c detect.Candidate) float64 {
	return pageHeight - c.Y - c.Height
}

// recoverAsError converts a panic into an ordinary error on the enclosing
// function's return value. Used via defer.
func recoverAsError(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("render panicked: %v", r)
	}
}

func imageType(path string) string {
	ext := strings.ToUpper(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "JPEG" {
		return "JPG"
	}
	return ext
}
