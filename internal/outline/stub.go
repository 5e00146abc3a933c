package outline

// BuildStub returns the placeholder record for module n. The title comes from
// the first marker for n in text, or is empty when there is none.
func BuildStub(text string, n int) *StubModule {
	return stubFromSpans(LocateModules(text), n)
}

func stubFromSpans(spans []ModuleSpan, n int) *StubModule {
	title, _ := findTitle(spans, n)
	return &StubModule{
		ModuleNumber: n,
		Title:        title,
		Status:       StatusComingSoon,
	}
}
