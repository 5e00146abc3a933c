package outline

// BuildTOC lists every module marker in text as a table-of-contents entry.
// Entries keep document order and are not deduplicated: a module announced
// twice appears twice.
func BuildTOC(text string) []TocEntry {
	return tocFromSpans(LocateModules(text))
}

func tocFromSpans(spans []ModuleSpan) []TocEntry {
	toc := make([]TocEntry, 0, len(spans))
	for _, s := range spans {
		toc = append(toc, TocEntry{
			ModuleNumber: s.Number,
			Title:        s.Title,
			Subtopics:    []string{},
		})
	}
	return toc
}
