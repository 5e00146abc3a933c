package loader

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
)

// Format reads the ordered page texts of one kind of document. Content that
// cannot be read without failing the whole document is logged to log.
type Format interface {
	Name() string
	Extensions() []string
	Pages(ctx context.Context, path string, log *slog.Logger) ([]string, error)
}

var registry []Format

// Register adds a format to the registry.
func Register(f Format) {
	registry = append(registry, f)
}

// formatFor picks the registered format for path by extension, falling back
// to plain text.
func formatFor(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	for _, f := range registry {
		for _, e := range f.Extensions() {
			if ext == e {
				return f
			}
		}
	}
	return &TextFormat{}
}

// SupportedFormats returns registered format names with their extensions.
func SupportedFormats() []string {
	var out []string
	for _, f := range registry {
		out = append(out, f.Name()+" ("+strings.Join(f.Extensions(), ", ")+")")
	}
	return out
}
