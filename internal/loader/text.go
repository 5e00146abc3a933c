package loader

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

// TextFormat reads plain text files. Form feeds, as emitted by pdftotext,
// separate pages; without them the whole file is one page.
type TextFormat struct{}

func init() {
	Register(&TextFormat{})
}

func (f *TextFormat) Name() string         { return "Text" }
func (f *TextFormat) Extensions() []string { return []string{".txt", ".text"} }

func (f *TextFormat) Pages(_ context.Context, path string, _ *slog.Logger) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return splitFormFeeds(string(data)), nil
}

// splitFormFeeds splits text into pages at form feed characters. A trailing
// form feed does not open an extra page.
func splitFormFeeds(text string) []string {
	pages := strings.Split(text, "\f")
	if len(pages) > 1 && strings.TrimSpace(pages[len(pages)-1]) == "" {
		pages = pages[:len(pages)-1]
	}
	return pages
}
