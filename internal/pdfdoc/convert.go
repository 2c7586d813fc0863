package pdfdoc

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
)

// ImageToPDF wraps a raster image into a single-page PDF written next to the
// source file as "<name>_converted.pdf", and returns the output path. The
// page is sized to the image so detection coordinates stay 1:1.
func ImageToPDF(imagePath string) (string, error) {
	ext := filepath.Ext(imagePath)
	outPath := strings.TrimSuffix(imagePath, ext) + "_converted.pdf"

	imp := pdfcpu.DefaultImportConfig()
	if err := api.ImportImagesFile([]string{imagePath}, outPath, imp, nil); err != nil {
		return "", fmt.Errorf("failed to convert %s to pdf: %w", filepath.Base(imagePath), err)
	}
	return outPath, nil
}
