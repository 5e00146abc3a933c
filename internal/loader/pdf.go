package loader

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// PDFFormat reads PDF files page by page. The page count comes from pdfcpu,
// page text from pdftotext (poppler-utils).
type PDFFormat struct{}

func init() {
	Register(&PDFFormat{})
}

func (f *PDFFormat) Name() string         { return "PDF" }
func (f *PDFFormat) Extensions() []string { return []string{".pdf"} }

func (f *PDFFormat) Pages(ctx context.Context, path string, log *slog.Logger) ([]string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return nil, fmt.Errorf("pdftotext not found: install poppler-utils (brew install poppler on macOS)")
	}

	count, err := pageCount(path)
	if err != nil {
		return nil, err
	}

	log.Debug("pdf page count", "path", path, "pages", count)

	pages := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		text, err := extractPage(ctx, path, i)
		if err != nil {
			return nil, fmt.Errorf("extracting page %d: %w", i, err)
		}
		pages = append(pages, text)
	}
	return pages, nil
}

func pageCount(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer file.Close()

	count, err := api.PageCount(file, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get page count for %s: %w", path, err)
	}
	return count, nil
}

// extractPage runs pdftotext for a single page and drops the trailing form
// feed it appends.
func extractPage(ctx context.Context, path string, pageNum int) (string, error) {
	cmd := exec.CommandContext(ctx, "pdftotext",
		"-f", strconv.Itoa(pageNum),
		"-l", strconv.Itoa(pageNum),
		"-enc", "UTF-8",
		path, "-",
	)
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(output), "\f"), nil
}
