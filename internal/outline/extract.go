package outline

import (
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Extractor assembles an ExtractionResult from a Document.
type Extractor struct {
	opts *Options
	log  *slog.Logger
}

// NewExtractor creates an Extractor. A nil opts uses DefaultOptions.
func NewExtractor(opts *Options) *Extractor {
	if opts == nil {
		opts = DefaultOptions()
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Extractor{opts: opts, log: log}
}

// parsed is a document classified once and shared read-only by all modules.
type parsed struct {
	lines []Line
	spans []ModuleSpan
}

// Extract builds the table of contents and one record per module: modules
// 1..FullModules in full, the rest up to TotalModules as stubs. It always
// returns exactly TotalModules records, whatever the document contains.
func (e *Extractor) Extract(doc *Document) *ExtractionResult {
	var text string
	if doc != nil {
		text = doc.Text
	}

	lines := ClassifyLines(text)
	p := &parsed{lines: lines, spans: locateModules(lines, text)}

	total, full := e.bounds()
	result := &ExtractionResult{
		TableOfContents: tocFromSpans(p.spans),
		Modules:         make([]ModuleRecord, total),
	}

	var g errgroup.Group
	if e.opts.Workers > 1 {
		g.SetLimit(e.opts.Workers)
	} else {
		g.SetLimit(1)
	}
	for i := range total {
		n := i + 1
		g.Go(func() error {
			if n <= full {
				result.Modules[i] = e.fullModule(p, n)
			} else {
				result.Modules[i] = stubFromSpans(p.spans, n)
			}
			return nil
		})
	}
	_ = g.Wait() // module builders never fail

	e.log.Debug("extraction complete",
		"toc_entries", len(result.TableOfContents),
		"modules", total,
		"full", full,
	)

	return result
}

// bounds clamps the configured module counts.
func (e *Extractor) bounds() (total, full int) {
	total = max(e.opts.TotalModules, 0)
	full = min(max(e.opts.FullModules, 0), total)
	return total, full
}

func (e *Extractor) fullModule(p *parsed, n int) *FullModule {
	title, ok := findTitle(p.spans, n)
	if !ok {
		e.log.Debug("module marker not found", "module", n)
	}

	m := &FullModule{
		ModuleNumber:  n,
		Title:         title,
		Sections:      segmentSections(moduleBody(p.lines, p.spans, n)),
		QuizQuestions: extractQuiz(p.lines, n),
	}

	e.log.Debug("extracted module",
		"module", n,
		"title", title,
		"sections", len(m.Sections),
		"questions", len(m.QuizQuestions),
	)
	return m
}
