// Package loader reads course documents from disk and flattens their pages
// into a single outline.Document.
package loader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/mptwarrior/coursextract/internal/outline"
)

// ErrInputMissing is returned when the source document does not exist.
var ErrInputMissing = errors.New("input document not found")

// Load reads the document at path and joins its pages into one Document.
// A missing file yields an error wrapping ErrInputMissing.
func Load(ctx context.Context, path string, log *slog.Logger) (*outline.Document, error) {
	if log == nil {
		log = slog.Default()
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputMissing, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	format := formatFor(path)
	log.Info("loading document", "path", path, "format", format.Name())

	pages, err := format.Pages(ctx, path, log)
	if err != nil {
		return nil, fmt.Errorf("reading %s pages: %w", format.Name(), err)
	}
	log.Debug("pages loaded", "count", len(pages))

	return &outline.Document{
		Name:  strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Text:  JoinPages(pages),
		Pages: len(pages),
	}, nil
}

// JoinPages normalizes each page and concatenates them, ending every page
// with a blank line so page breaks never glue two lines together.
func JoinPages(pages []string) string {
	var sb strings.Builder
	for _, p := range pages {
		sb.WriteString(NormalizePage(p))
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// NormalizePage folds compatibility characters (ligatures, full-width
// digits) to their plain forms and unifies line endings.
func NormalizePage(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return norm.NFKC.String(text)
}
