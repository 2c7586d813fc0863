package pdfdoc

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// PageSize is a page's media box in points.
type PageSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Info describes the page structure of a document.
type Info struct {
	PageCount int        `json:"page_count"`
	Pages     []PageSize `json:"pages"`
}

// ReadInfo returns the page count and per-page dimensions of the PDF at path.
func ReadInfo(path string) (*Info, error) {
	dims, err := api.PageDimsFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read page dimensions: %w", err)
	}

	info := &Info{
		PageCount: len(dims),
		Pages:     make([]PageSize, 0, len(dims)),
	}
	for _, d := range dims {
		info.Pages = append(info.Pages, PageSize{Width: d.Width, Height: d.Height})
	}
	return info, nil
}
