package outline

// LocateModules returns every module marker in text, in document order.
// Repeated module numbers are all reported.
func LocateModules(text string) []ModuleSpan {
	return locateModules(ClassifyLines(text), text)
}

// locateModules builds spans from classified lines. Each span's body runs
// from the line after its marker to the next marker or the end of text.
func locateModules(lines []Line, text string) []ModuleSpan {
	var spans []ModuleSpan
	for i, ln := range lines {
		if ln.Kind != LineModule {
			continue
		}
		spans = append(spans, ModuleSpan{
			Number:   ln.Number,
			Title:    ln.Rest,
			Start:    ln.Offset,
			bodyFrom: i + 1,
		})
	}

	for i := range spans {
		spans[i].End = len(text)
		spans[i].bodyTo = len(lines)
		if i+1 < len(spans) {
			spans[i].End = spans[i+1].Start
			spans[i].bodyTo = spans[i+1].bodyFrom - 1
		}

		bodyStart := spans[i].End
		if spans[i].bodyFrom < spans[i].bodyTo {
			bodyStart = lines[spans[i].bodyFrom].Offset
		}
		spans[i].Text = text[bodyStart:spans[i].End]
	}

	return spans
}

// FindTitle returns the title of the first marker for module n.
func FindTitle(text string, n int) (string, bool) {
	return findTitle(LocateModules(text), n)
}

func findTitle(spans []ModuleSpan, n int) (string, bool) {
	for _, s := range spans {
		if s.Number == n {
			return s.Title, true
		}
	}
	return "", false
}

// moduleBody picks the lines used for section segmentation of module n: the
// body of the first marker for n that has prose before its quiz, or the body of
// the first marker when none does. Tables of contents repeat module markers
// with nothing in between, which this skips.
func moduleBody(lines []Line, spans []ModuleSpan, n int) []Line {
	var fallback []Line
	found := false
	for _, s := range spans {
		if s.Number != n {
			continue
		}
		body := proseLines(lines[s.bodyFrom:s.bodyTo])
		if hasContent(body) {
			return body
		}
		if !found {
			fallback, found = body, true
		}
	}
	return fallback
}

// proseLines cuts a module body at its first quiz marker.
func proseLines(body []Line) []Line {
	for i, ln := range body {
		if ln.Kind == LineQuiz {
			return body[:i]
		}
	}
	return body
}

func hasContent(lines []Line) bool {
	for _, ln := range lines {
		if ln.Kind != LineBlank {
			return true
		}
	}
	return false
}
