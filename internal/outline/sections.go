package outline

import "strings"

// SegmentSections splits prose into titled sections.
//
// A heading line (see isHeading) closes the current section only when that
// section has content; otherwise it just renames it, so consecutive headings
// collapse into the last one. Other non-blank lines are appended to the
// current section's content, joined by single spaces. Blank lines are ignored.
func SegmentSections(text string) []Section {
	return segmentSections(ClassifyLines(text))
}

func segmentSections(lines []Line) []Section {
	sections := []Section{}
	var (
		title   string
		content []string
	)

	flush := func() {
		if len(content) == 0 {
			return
		}
		sections = append(sections, Section{
			Title:   title,
			Content: strings.Join(content, " "),
		})
	}

	for _, ln := range lines {
		switch {
		case ln.Kind == LineBlank:
			continue
		case ln.Heading:
			flush()
			title, content = ln.Text, nil
		default:
			content = append(content, ln.Text)
		}
	}
	flush()

	return sections
}
