package outline

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// LineKind is the role a single line of text plays in a course document.
type LineKind int

const (
	LineBlank    LineKind = iota // empty or whitespace only
	LineModule                   // "Module 2: Risk Basics"
	LineQuiz                     // "Quiz", "Practice Questions - Module 2"
	LineQuestion                 // "1. What is risk?"
	LineOption                   // "A. Loss potential", "b) Profit"
	LineAnswer                   // "Answer: A"
	LinePlain                    // anything else
)

var lineKindNames = map[LineKind]string{
	LineBlank:    "blank",
	LineModule:   "module",
	LineQuiz:     "quiz",
	LineQuestion: "question",
	LineOption:   "option",
	LineAnswer:   "answer",
	LinePlain:    "plain",
}

func (k LineKind) String() string {
	if name, ok := lineKindNames[k]; ok {
		return name
	}
	return "LineKind(" + strconv.Itoa(int(k)) + ")"
}

// maxHeadingLen is the exclusive upper bound, in characters, for heading and
// quiz marker lines.
const maxHeadingLen = 100

var (
	// Module marker: number, separator, title to end of line. The separator
	// never spans a line break.
	modulePattern = regexp.MustCompile(`(?i)^module\s+(\d+)(?:\s*[:\-–—]\s*|\s+)(\S.*)$`)

	// Module reference anywhere in a line, used to tie quiz markers to modules.
	moduleRefPattern = regexp.MustCompile(`(?i)\bmodule\s+(\d+)\b`)

	// Module reference that opens a line, with or without a title.
	moduleLeadPattern = regexp.MustCompile(`(?i)^module\s+(\d+)\b`)

	quizPattern     = regexp.MustCompile(`(?i)\b(?:quiz|practice\s+questions)\b`)
	quizLeadPattern = regexp.MustCompile(`(?i)^(?:quiz|practice\s+questions)\b`)
	questionPattern = regexp.MustCompile(`^(\d+)\.(?:\s*(\D.*))?$`)
	optionPattern   = regexp.MustCompile(`^([A-Da-d])[.)]\s*(\S.*)$`)
	answerPattern   = regexp.MustCompile(`(?i)^(?:correct\s+answer|answer|solution)\s*[:\s]\s*([\p{L}\p{N}_]+)`)

	numberedHeadingPattern = regexp.MustCompile(`^\d+\.`)
	capsHeadingPattern     = regexp.MustCompile(`^[A-Z\s]+$`)
)

// Line is one classified line of a document.
type Line struct {
	Kind    LineKind
	Text    string // trimmed line text
	Offset  int    // byte offset of the raw line in the source text
	Number  int    // module number (module, quiz) or question number
	Letter  string // option letter, uppercased
	Rest    string // module title, option text, question remainder or answer token
	Heading bool   // matches the section heading heuristic
}

// ClassifyLines splits text on line breaks and classifies every line.
func ClassifyLines(text string) []Line {
	raw := strings.Split(text, "\n")
	lines := make([]Line, 0, len(raw))
	offset := 0
	for _, r := range raw {
		ln := classifyLine(r)
		ln.Offset = offset
		lines = append(lines, ln)
		offset += len(r) + 1
	}
	return lines
}

func classifyLine(raw string) Line {
	text := strings.TrimSpace(raw)
	ln := Line{Text: text}
	if text == "" {
		ln.Kind = LineBlank
		return ln
	}

	ln.Heading = isHeading(text)

	if m := questionPattern.FindStringSubmatch(text); m != nil {
		ln.Kind = LineQuestion
		ln.Number = atoi(m[1])
		ln.Rest = strings.TrimSpace(m[2])
		return ln
	}

	if m := optionPattern.FindStringSubmatch(text); m != nil {
		ln.Kind = LineOption
		ln.Letter = strings.ToUpper(m[1])
		ln.Rest = strings.TrimSpace(m[2])
		return ln
	}

	// A module marker whose title opens with the quiz keyword ("Module 1 Quiz",
	// "Module 1 Quiz (continued)") announces a quiz. Any other title keeps the
	// line a module marker, so "Module 6: Final Quiz" is module 6.
	module := modulePattern.FindStringSubmatch(text)
	if utf8.RuneCountInString(text) < maxHeadingLen && quizPattern.MatchString(text) &&
		(module == nil || quizLeadPattern.MatchString(module[2])) {
		ln.Kind = LineQuiz
		if m := moduleRefPattern.FindStringSubmatch(text); m != nil {
			ln.Number = atoi(m[1])
		}
		return ln
	}

	if module != nil {
		ln.Kind = LineModule
		ln.Number = atoi(module[1])
		ln.Rest = strings.TrimSpace(module[2])
		return ln
	}

	if m := answerPattern.FindStringSubmatch(text); m != nil {
		ln.Kind = LineAnswer
		ln.Rest = strings.ToUpper(m[1])
		return ln
	}

	ln.Kind = LinePlain
	return ln
}

// isHeading reports whether a trimmed, non-empty line starts a new section:
// short, and either numbered ("2. Position Sizing") or all capitals.
func isHeading(text string) bool {
	if text == "" || utf8.RuneCountInString(text) >= maxHeadingLen {
		return false
	}
	return numberedHeadingPattern.MatchString(text) || capsHeadingPattern.MatchString(text)
}

// leadingModuleNumber returns the module number a line opens with, as in
// "Module 3" or "Module 3: Title".
func leadingModuleNumber(text string) (int, bool) {
	m := moduleLeadPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	return atoi(m[1]), true
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
