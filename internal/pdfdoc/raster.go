package pdfdoc

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// DefaultDPI is the rasterization resolution used when callers pass dpi <= 0.
const DefaultDPI = 300

// PageImage is one rasterized page.
type PageImage struct {
	// Page is the zero-based page index.
	Page  int
	Image image.Image
}

// Rasterize renders every page of the PDF at path to an image using pdftoppm.
// Results are ordered by page index. The context bounds the external process;
// cancellation aborts the whole rasterization.
func Rasterize(ctx context.Context, path string, dpi int) ([]PageImage, error) {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	if _, err := exec.LookPath("pdftoppm"); err != nil {
		return nil, fmt.Errorf("pdftoppm not found in PATH: %w", err)
	}

	tmpDir, err := os.MkdirTemp("", "sigstamp-raster-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	cmd := exec.CommandContext(ctx, "pdftoppm", "-png", "-r", strconv.Itoa(dpi), "-q", path, prefix)
	out, err := cmd.CombinedOutput()
	if ctx.Err() == context.DeadlineExceeded {
		return nil, fmt.Errorf("pdftoppm timed out")
	}
	if err != nil {
		return nil, fmt.Errorf("pdftoppm failed: %w: %s", err, strings.TrimSpace(string(out)))
	}

	paths, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return nil, fmt.Errorf("failed to glob page images: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("pdftoppm produced no page images")
	}

	sort.Slice(paths, func(i, j int) bool {
		return pageNumFromPath(paths[i]) < pageNumFromPath(paths[j])
	})

	pages := make([]PageImage, 0, len(paths))
	for _, p := range paths {
		num := pageNumFromPath(p)
		if num < 1 {
			continue
		}
		img, err := decodePNG(p)
		if err != nil {
			return nil, fmt.Errorf("failed to decode page image %s: %w", filepath.Base(p), err)
		}
		pages = append(pages, PageImage{Page: num - 1, Image: img})
	}
	return pages, nil
}

// pageNumFromPath parses the 1-based page number pdftoppm appends to the
// output prefix ("page-3.png", "page-012.png"). Returns 0 when unparseable.
func pageNumFromPath(p string) int {
	base := strings.TrimSuffix(filepath.Base(p), ".png")
	idx := strings.LastIndex(base, "-")
	if idx < 0 {
		return 0
	}
	n, err := strconv.Atoi(base[idx+1:])
	if err != nil {
		return 0
	}
	return n
}

func decodePNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}
