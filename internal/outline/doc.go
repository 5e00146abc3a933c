// Package outline turns the flat text of a course document into a structured
// outline: a table of contents, per-module prose sections and per-module quiz
// questions.
//
// # Overview
//
// Course documents follow a loose textual convention: modules are introduced
// by lines such as "Module 2: Risk Basics", quizzes are announced by a "Quiz"
// or "Practice Questions" line, questions are numbered ("1.") and options are
// lettered ("A." or "b)"). None of this is strictly regular, so extraction is
// best-effort: a marker that cannot be found yields an empty value, never an
// error.
//
// # Pipeline
//
// Every line of the document is classified once (see LineKind) and all
// components work from those classifications:
//
//   - lines.go: the line classifier
//   - modules.go: module markers and module spans (LocateModules, FindTitle)
//   - toc.go: table of contents (BuildTOC)
//   - sections.go: prose sections inside a module (SegmentSections)
//   - quiz.go: quiz blocks and questions (ExtractQuiz)
//   - stub.go: placeholder records for modules that are not written yet
//   - extract.go: the Extractor that assembles an ExtractionResult
//
// # Usage
//
//	ex := outline.NewExtractor(outline.DefaultOptions())
//	result := ex.Extract(doc)
package outline
