package outline

import (
	"encoding/json"
	"log/slog"
)

// DefaultPoints is the score assigned to every extracted question.
const DefaultPoints = 1

// QuestionType classifies a quiz question by how it is answered.
type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionTrueFalse      QuestionType = "true_false"
	QuestionEssay          QuestionType = "essay"
)

// ModuleStatus describes a module that is only present as a placeholder.
type ModuleStatus string

const (
	StatusComingSoon ModuleStatus = "coming_soon"
)

// Document is the full text of a loaded source document.
type Document struct {
	Name  string // Base name of the source file without extension
	Text  string // Concatenated page text
	Pages int    // Number of pages the text was built from
}

// ModuleSpan is one module marker found in a document together with the text
// that follows it, up to the next module marker or the end of the document.
type ModuleSpan struct {
	Number int    // Module number as written in the marker
	Title  string // Marker title, trimmed
	Start  int    // Byte offset of the marker line
	End    int    // Byte offset where the span ends (exclusive)
	Text   string // Body text following the marker line

	// Line indices of the body within the classified document.
	bodyFrom, bodyTo int
}

// TocEntry is one line of the table of contents.
type TocEntry struct {
	ModuleNumber int      `json:"module_number" yaml:"module_number"`
	Title        string   `json:"title" yaml:"title"`
	Subtopics    []string `json:"subtopics" yaml:"subtopics"`
}

// Section is a titled run of prose inside a module.
type Section struct {
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

// Option is one lettered answer choice of a question.
type Option struct {
	Letter string `json:"letter" yaml:"letter"`
	Text   string `json:"text" yaml:"text"`
}

// QuizQuestion is a single numbered question from a module quiz.
type QuizQuestion struct {
	Number        int          `json:"number" yaml:"number"`
	QuestionText  string       `json:"question_text" yaml:"question_text"`
	Type          QuestionType `json:"type" yaml:"type"`
	Options       []Option     `json:"options" yaml:"options"`
	CorrectAnswer string       `json:"correct_answer" yaml:"correct_answer"`
	Points        int          `json:"points" yaml:"points"`
}

// ModuleRecord is the extracted form of one module. It is either a
// *FullModule or a *StubModule.
type ModuleRecord interface {
	Number() int
	ModuleTitle() string
	isModuleRecord()
}

// FullModule carries the sections and quiz of a written module.
type FullModule struct {
	ModuleNumber  int            `json:"module_number" yaml:"module_number"`
	Title         string         `json:"title" yaml:"title"`
	Sections      []Section      `json:"sections" yaml:"sections"`
	QuizQuestions []QuizQuestion `json:"quiz_questions" yaml:"quiz_questions"`
}

// StubModule is a placeholder for a module whose content is not available yet.
type StubModule struct {
	ModuleNumber int          `json:"module_number" yaml:"module_number"`
	Title        string       `json:"title" yaml:"title"`
	Status       ModuleStatus `json:"status" yaml:"status"`
}

func (m *FullModule) Number() int         { return m.ModuleNumber }
func (m *FullModule) ModuleTitle() string { return m.Title }
func (m *FullModule) isModuleRecord()     {}

func (m *StubModule) Number() int         { return m.ModuleNumber }
func (m *StubModule) ModuleTitle() string { return m.Title }
func (m *StubModule) isModuleRecord()     {}

// ExtractionResult is the root output of an extraction run.
type ExtractionResult struct {
	TableOfContents []TocEntry     `json:"table_of_contents" yaml:"table_of_contents"`
	Modules         []ModuleRecord `json:"modules" yaml:"modules"`
}

// String returns a JSON representation of the result for debugging.
func (r *ExtractionResult) String() string {
	b, _ := json.MarshalIndent(r, "", "  ")
	return string(b)
}

// Options controls how an Extractor splits modules into full and stub records.
type Options struct {
	// FullModules is the number of leading modules extracted in full (K).
	FullModules int

	// TotalModules is the number of module records produced.
	TotalModules int

	// Workers bounds concurrent per-module extraction; 1 or less runs sequentially.
	Workers int

	// Logger receives debug output; nil means slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns Options matching the six-module academy layout,
// of which the first three are written.
func DefaultOptions() *Options {
	return &Options{
		FullModules:  3,
		TotalModules: 6,
		Workers:      4,
	}
}
