package outline

import (
	"strings"
	"testing"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		kind    LineKind
		number  int
		letter  string
		rest    string
		heading bool
	}{
		{"empty", "", LineBlank, 0, "", "", false},
		{"whitespace", "   \t", LineBlank, 0, "", "", false},
		{"module with colon", "Module 2: Risk Basics", LineModule, 2, "", "Risk Basics", false},
		{"module upper case", "MODULE 3 MONEY MANAGEMENT", LineModule, 3, "", "MONEY MANAGEMENT", false},
		{"module with dash", "Module 4 - Psychology", LineModule, 4, "", "Psychology", false},
		{"bare module number", "Module 5", LinePlain, 0, "", "", false},
		{"quiz naming module", "Quiz Module 1", LineQuiz, 1, "", "", false},
		{"module quiz heading", "Module 1 Quiz", LineQuiz, 1, "", "", false},
		{"continued quiz heading", "Module 1 Quiz (continued)", LineQuiz, 1, "", "", false},
		{"module dash quiz", "Module 2 - Practice Questions", LineQuiz, 2, "", "", false},
		{"module titled with quiz", "Module 6: Final Quiz", LineModule, 6, "", "Final Quiz", false},
		{"quiz inside module title", "Module 5: Weekly Quiz Review", LineModule, 5, "", "Weekly Quiz Review", false},
		{"practice questions", "PRACTICE QUESTIONS", LineQuiz, 0, "", "", true},
		{"question", "1. What is risk?", LineQuestion, 1, "", "What is risk?", true},
		{"question without space", "12.Define leverage", LineQuestion, 12, "", "Define leverage", true},
		{"bare question number", "3.", LineQuestion, 3, "", "", true},
		{"decimal heading", "1.1 Foundations", LinePlain, 0, "", "", true},
		{"option with dot", "A. Loss potential", LineOption, 0, "A", "Loss potential", false},
		{"option with paren", "b) Profit", LineOption, 0, "B", "Profit", false},
		{"answer with colon", "Answer: a", LineAnswer, 0, "", "A", false},
		{"correct answer", "Correct Answer B", LineAnswer, 0, "", "B", false},
		{"solution word", "Solution: diversify", LineAnswer, 0, "", "DIVERSIFY", false},
		{"caps heading", "INTRODUCTION", LinePlain, 0, "", "", true},
		{"prose", "Risk is the potential for loss.", LinePlain, 0, "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ln := classifyLine(tt.input)
			if ln.Kind != tt.kind {
				t.Errorf("classifyLine(%q).Kind = %v, want %v", tt.input, ln.Kind, tt.kind)
			}
			if ln.Number != tt.number {
				t.Errorf("classifyLine(%q).Number = %d, want %d", tt.input, ln.Number, tt.number)
			}
			if ln.Letter != tt.letter {
				t.Errorf("classifyLine(%q).Letter = %q, want %q", tt.input, ln.Letter, tt.letter)
			}
			if ln.Rest != tt.rest {
				t.Errorf("classifyLine(%q).Rest = %q, want %q", tt.input, ln.Rest, tt.rest)
			}
			if ln.Heading != tt.heading {
				t.Errorf("classifyLine(%q).Heading = %v, want %v", tt.input, ln.Heading, tt.heading)
			}
		})
	}
}

func TestIsHeading(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"numbered", "2. Position Sizing", true},
		{"numbered without space", "2.Position Sizing", true},
		{"all caps", "RISK MANAGEMENT", true},
		{"caps with digit", "STEP 1", false},
		{"caps with punctuation", "RISK: BASICS", false},
		{"mixed case", "Risk Management", false},
		{"empty", "", false},
		{"long caps", strings.Repeat("A", 99), true},
		{"too long caps", strings.Repeat("A", 100), false},
		{"too long numbered", "1. " + strings.Repeat("x", 97), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isHeading(tt.input); got != tt.expected {
				t.Errorf("isHeading(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestClassifyLinesOffsets(t *testing.T) {
	text := "Module 1: Intro\n\n  Body line  \n"
	lines := ClassifyLines(text)

	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}

	wantOffsets := []int{0, 16, 17, 31}
	for i, want := range wantOffsets {
		if lines[i].Offset != want {
			t.Errorf("line %d offset = %d, want %d", i, lines[i].Offset, want)
		}
	}
	if lines[2].Text != "Body line" {
		t.Errorf("expected trimmed text 'Body line', got %q", lines[2].Text)
	}
}

func TestLineKindString(t *testing.T) {
	if LineQuiz.String() != "quiz" {
		t.Errorf("expected 'quiz', got %q", LineQuiz.String())
	}
	if got := LineKind(42).String(); got != "LineKind(42)" {
		t.Errorf("expected 'LineKind(42)', got %q", got)
	}
}
