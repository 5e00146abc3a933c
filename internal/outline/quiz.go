package outline

import (
	"regexp"
	"strings"
)

// Answer given with a colon anywhere in a question block, "... Answer: B".
var answerColonPattern = regexp.MustCompile(`(?i)\b(?:correct\s+answer|answer|solution)\s*:\s*([\p{L}\p{N}_]+)`)

// ExtractQuiz returns the questions of module n's quiz, or an empty slice
// when no quiz marker is associated with that module.
func ExtractQuiz(text string, n int) []QuizQuestion {
	return extractQuiz(ClassifyLines(text), n)
}

// ParseQuizBlock decomposes the text of a single quiz block into questions.
func ParseQuizBlock(text string) []QuizQuestion {
	if qs := parseQuestions(ClassifyLines(text)); qs != nil {
		return qs
	}
	return []QuizQuestion{}
}

// extractQuiz parses the first quiz block of module n that contains at least
// one question. Earlier blocks without questions come from passing mentions
// such as "Take the quiz below".
func extractQuiz(lines []Line, n int) []QuizQuestion {
	for _, block := range quizBlocks(lines, n) {
		if qs := parseQuestions(block); len(qs) > 0 {
			return qs
		}
	}
	return []QuizQuestion{}
}

// quizBlocks returns the line ranges that follow quiz markers for module n.
// A block ends at a quiz marker for another module, at a module marker for
// another module, or at the end of the document. A repeated marker for module
// n, such as a running "Module 1 Quiz (continued)" header, continues the block.
func quizBlocks(lines []Line, n int) [][]Line {
	var blocks [][]Line
	current := 0 // module whose body we are in
	start := -1

	closeBlock := func(end int) {
		if start >= 0 {
			blocks = append(blocks, lines[start:end])
			start = -1
		}
	}

	for i := 0; i < len(lines); i++ {
		ln := lines[i]
		switch ln.Kind {
		case LineModule:
			if ln.Number != n {
				closeBlock(i)
			}
			current = ln.Number
		case LineQuiz:
			target, skip := quizTarget(lines, i, current)
			switch {
			case target != n:
				closeBlock(i)
			case start < 0:
				start = i + 1 + skip
			}
			i += skip
		}
	}
	closeBlock(len(lines))

	return blocks
}

// quizTarget resolves which module the quiz marker at lines[i] belongs to.
// The module may be named on the marker line itself or on the next non-blank
// line ("QUIZ" followed by "Module 2"); in the latter case skip is the number
// of lines consumed after the marker. Otherwise the quiz belongs to the module
// whose body contains it.
func quizTarget(lines []Line, i, current int) (target, skip int) {
	if lines[i].Number > 0 {
		return lines[i].Number, 0
	}
	for j := i + 1; j < len(lines); j++ {
		if lines[j].Kind == LineBlank {
			continue
		}
		if n, ok := leadingModuleNumber(lines[j].Text); ok {
			return n, j - i
		}
		break
	}
	return current, 0
}

// parseQuestions splits a quiz block at question lines ("3. ...").
func parseQuestions(block []Line) []QuizQuestion {
	var questions []QuizQuestion
	for i := 0; i < len(block); {
		if block[i].Kind != LineQuestion {
			i++
			continue
		}
		j := i + 1
		for j < len(block) && block[j].Kind != LineQuestion {
			j++
		}
		questions = append(questions, parseQuestion(block[i], block[i+1:j]))
		i = j
	}
	return questions
}

func parseQuestion(head Line, body []Line) QuizQuestion {
	q := QuizQuestion{
		Number:  head.Number,
		Options: []Option{},
		Points:  DefaultPoints,
	}

	// The question text is the first non-blank line after the number, which
	// may sit on the line below it.
	rest := body
	q.QuestionText = head.Rest
	if q.QuestionText == "" {
		for k, ln := range body {
			if ln.Kind != LineBlank {
				q.QuestionText = ln.Text
				rest = body[k+1:]
				break
			}
		}
	}

	for _, ln := range rest {
		if ln.Kind == LineOption {
			q.Options = append(q.Options, Option{Letter: ln.Letter, Text: ln.Rest})
		}
	}

	q.Type = inferType(q)
	q.CorrectAnswer = findAnswer(q.QuestionText, rest)

	return q
}

func inferType(q QuizQuestion) QuestionType {
	if len(q.Options) > 0 {
		return QuestionMultipleChoice
	}
	text := strings.ToLower(q.QuestionText)
	if strings.Contains(text, "true or false") || strings.Contains(text, "true/false") {
		return QuestionTrueFalse
	}
	return QuestionEssay
}

// findAnswer looks for "Answer: X" anywhere in the question block, then for an
// answer line without a colon ("Answer B"). The token is uppercased.
func findAnswer(questionText string, rest []Line) string {
	raw := make([]string, 0, len(rest)+1)
	raw = append(raw, questionText)
	for _, ln := range rest {
		raw = append(raw, ln.Text)
	}
	if m := answerColonPattern.FindStringSubmatch(strings.Join(raw, "\n")); m != nil {
		return strings.ToUpper(m[1])
	}

	for _, ln := range rest {
		if ln.Kind == LineAnswer {
			return ln.Rest
		}
	}
	return ""
}
