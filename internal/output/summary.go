package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mptwarrior/coursextract/internal/outline"
)

var (
	// titleStyle for bold headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33"))

	// dimStyle for muted labels
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for written modules
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// pendingStyle for placeholder modules
	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	// boxStyle for the summary box
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1)
)

// Files lists where an extraction run wrote its outputs. Empty paths are
// omitted from the summary.
type Files struct {
	Result  string
	RawText string
}

// FormatSummary renders the extraction summary box: the number of table of
// contents entries, then one line per module.
func FormatSummary(w io.Writer, result *outline.ExtractionResult, files Files) {
	var b strings.Builder

	b.WriteString(titleStyle.Render("EXTRACTION SUMMARY"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %d\n", dimStyle.Render("Table of contents entries:"), len(result.TableOfContents))
	fmt.Fprintf(&b, "%s %d", dimStyle.Render("Modules:"), len(result.Modules))

	for _, m := range result.Modules {
		b.WriteString("\n")
		b.WriteString(ModuleLine(m))
	}

	if files.Result != "" {
		fmt.Fprintf(&b, "\n\n%s %s", dimStyle.Render("Result:"), files.Result)
	}
	if files.RawText != "" {
		sep := "\n"
		if files.Result == "" {
			sep = "\n\n"
		}
		fmt.Fprintf(&b, "%s%s %s", sep, dimStyle.Render("Raw text:"), files.RawText)
	}

	fmt.Fprintln(w, boxStyle.Render(b.String()))
}

// ModuleLine renders one module as "Module N: Title" followed by its section
// and question counts, or its status for a placeholder.
func ModuleLine(m outline.ModuleRecord) string {
	head := fmt.Sprintf("Module %d: %s", m.Number(), m.ModuleTitle())
	switch rec := m.(type) {
	case *outline.FullModule:
		return fmt.Sprintf("%s  %s", head, successStyle.Render(fmt.Sprintf(
			"%s, %s",
			plural(len(rec.Sections), "section"),
			plural(len(rec.QuizQuestions), "question"),
		)))
	case *outline.StubModule:
		return fmt.Sprintf("%s  %s", head, pendingStyle.Render(string(rec.Status)))
	default:
		return head
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
