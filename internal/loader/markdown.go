package loader

import (
	"context"
	"log/slog"
	"os"
	"regexp"
	"strings"
)

// MarkdownFormat reads Markdown course notes. Heading markers and code
// fences are stripped so "## Module 1: Basics" reads like a PDF heading line.
type MarkdownFormat struct{}

func init() {
	Register(&MarkdownFormat{})
}

func (f *MarkdownFormat) Name() string         { return "Markdown" }
func (f *MarkdownFormat) Extensions() []string { return []string{".md", ".markdown"} }

func (f *MarkdownFormat) Pages(_ context.Context, path string, _ *slog.Logger) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	pages := splitFormFeeds(string(data))
	for i, p := range pages {
		pages[i] = markdownToText(p)
	}
	return pages, nil
}

var (
	headerPattern    = regexp.MustCompile(`^\s{0,3}#{1,6}\s+(.+?)\s*#*\s*$`)
	codeBlockPattern = regexp.MustCompile("^\\s*(```|~~~)")
	emphasisPattern  = regexp.MustCompile(`(\*\*|__)(.+?)(\*\*|__)`)
)

// markdownToText keeps one output line per source line. Headers lose their
// leading #s, bold markers are dropped and fenced code is removed.
func markdownToText(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	inCodeBlock := false

	for _, line := range lines {
		if codeBlockPattern.MatchString(line) {
			inCodeBlock = !inCodeBlock
			continue
		}
		if inCodeBlock {
			continue
		}

		if m := headerPattern.FindStringSubmatch(line); m != nil {
			line = m[1]
		}
		out = append(out, emphasisPattern.ReplaceAllString(line, "$2"))
	}

	return strings.Join(out, "\n")
}
