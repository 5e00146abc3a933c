package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mptwarrior/coursextract/internal/outline"
)

func sampleResult() *outline.ExtractionResult {
	return &outline.ExtractionResult{
		TableOfContents: []outline.TocEntry{
			{ModuleNumber: 1, Title: "Risk Basics", Subtopics: []string{}},
			{ModuleNumber: 2, Title: "Position Sizing", Subtopics: []string{}},
		},
		Modules: []outline.ModuleRecord{
			&outline.FullModule{
				ModuleNumber: 1,
				Title:        "Risk Basics",
				Sections: []outline.Section{
					{Title: "INTRODUCTION", Content: "Risk is the potential for loss."},
				},
				QuizQuestions: []outline.QuizQuestion{
					{
						Number:        1,
						QuestionText:  "What is risk?",
						Type:          outline.QuestionMultipleChoice,
						Options:       []outline.Option{{Letter: "A", Text: "Loss potential"}, {Letter: "B", Text: "Profit"}},
						CorrectAnswer: "A",
						Points:        outline.DefaultPoints,
					},
				},
			},
			&outline.StubModule{ModuleNumber: 2, Title: "Position Sizing", Status: outline.StatusComingSoon},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"", FormatJSON, false},
		{"YAML", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEncodeJSON(t *testing.T) {
	data, err := Marshal(FormatJSON, sampleResult())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	if !bytes.HasPrefix(data, []byte("{\n  \"table_of_contents\"")) {
		t.Errorf("expected two-space indented JSON, got:\n%s", data)
	}

	var decoded struct {
		Modules []map[string]any `json:"modules"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(decoded.Modules) != 2 {
		t.Fatalf("expected 2 modules, got %d", len(decoded.Modules))
	}
	if _, ok := decoded.Modules[0]["quiz_questions"]; !ok {
		t.Error("full module should carry quiz_questions")
	}
	if _, ok := decoded.Modules[1]["quiz_questions"]; ok {
		t.Error("stub module should not carry quiz_questions")
	}
	if decoded.Modules[1]["status"] != "coming_soon" {
		t.Errorf("expected stub status coming_soon, got %v", decoded.Modules[1]["status"])
	}
}

func TestEncodeYAML(t *testing.T) {
	data, err := Marshal(FormatYAML, sampleResult())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	for _, want := range []string{
		"table_of_contents:\n",
		"  - module_number: 1\n",
		"status: coming_soon\n",
		"correct_answer: A\n",
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("YAML output missing %q:\n%s", want, data)
		}
	}
}

func TestValidate(t *testing.T) {
	t.Run("encoded result is valid", func(t *testing.T) {
		for _, format := range []Format{FormatJSON, FormatYAML} {
			data, err := Marshal(format, sampleResult())
			if err != nil {
				t.Fatalf("Marshal(%s): %v", format, err)
			}
			if err := Validate(format, data); err != nil {
				t.Errorf("Validate(%s): %v", format, err)
			}
		}
	})

	t.Run("extracted result is valid", func(t *testing.T) {
		doc := &outline.Document{Text: "Module 1: Intro\nSome text\n\nModule 1 Quiz\n1. True or false?\nAnswer: True\n"}
		result := outline.NewExtractor(nil).Extract(doc)
		data, err := Marshal(FormatJSON, result)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if err := Validate(FormatJSON, data); err != nil {
			t.Errorf("Validate: %v", err)
		}
	})

	tests := []struct {
		name string
		data string
	}{
		{"not json", `{"table_of_contents": [`},
		{"missing modules", `{"table_of_contents": []}`},
		{"unknown status", `{"table_of_contents": [], "modules": [{"module_number": 4, "title": "", "status": "draft"}]}`},
		{"stub with quiz", `{"table_of_contents": [], "modules": [{"module_number": 4, "title": "", "status": "coming_soon", "quiz_questions": []}]}`},
		{"lowercase option letter", `{"table_of_contents": [], "modules": [{"module_number": 1, "title": "", "sections": [],
			"quiz_questions": [{"number": 1, "question_text": "", "type": "multiple_choice", "options": [{"letter": "a", "text": ""}], "correct_answer": "", "points": 1}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(FormatJSON, []byte(tt.data))
			if !errors.Is(err, ErrInvalidResult) {
				t.Errorf("expected ErrInvalidResult, got %v", err)
			}
		})
	}
}

func TestWriteResult(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("writes json", func(t *testing.T) {
		path := filepath.Join(tmpDir, "out", "academy_content.json")
		if err := WriteResult(path, FormatJSON, sampleResult(), true); err != nil {
			t.Fatalf("WriteResult: %v", err)
		}
		if err := ValidateFile(path); err != nil {
			t.Errorf("ValidateFile: %v", err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("Stat: %v", err)
		}
		if info.Mode().Perm() != 0o644 {
			t.Errorf("expected mode 0644, got %v", info.Mode().Perm())
		}
	})

	t.Run("writes yaml", func(t *testing.T) {
		path := filepath.Join(tmpDir, "academy_content.yaml")
		if err := WriteResult(path, FormatYAML, sampleResult(), true); err != nil {
			t.Fatalf("WriteResult: %v", err)
		}
		if err := ValidateFile(path); err != nil {
			t.Errorf("ValidateFile: %v", err)
		}
	})

	t.Run("invalid result is not written", func(t *testing.T) {
		path := filepath.Join(tmpDir, "bad.json")
		bad := sampleResult()
		bad.Modules = append(bad.Modules, &outline.StubModule{ModuleNumber: 3, Status: "draft"})

		err := WriteResult(path, FormatJSON, bad, true)
		if !errors.Is(err, ErrInvalidResult) {
			t.Fatalf("expected ErrInvalidResult, got %v", err)
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("expected %s not to exist", path)
		}
	})

	t.Run("raw text", func(t *testing.T) {
		path := filepath.Join(tmpDir, "pdf_raw_text.txt")
		if err := WriteRawText(path, "page1\n\n"); err != nil {
			t.Fatalf("WriteRawText: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		if string(data) != "page1\n\n" {
			t.Errorf("got %q", data)
		}
	})
}

func TestFormatForPath(t *testing.T) {
	tests := map[string]Format{
		"result.json": FormatJSON,
		"result.yaml": FormatYAML,
		"result.yml":  FormatYAML,
		"result":      FormatJSON,
	}
	for path, want := range tests {
		if got := FormatForPath(path); got != want {
			t.Errorf("FormatForPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestFormatSummary(t *testing.T) {
	var buf bytes.Buffer
	FormatSummary(&buf, sampleResult(), Files{Result: "academy_content.json", RawText: "pdf_raw_text.txt"})
	out := buf.String()

	for _, want := range []string{
		"EXTRACTION SUMMARY",
		"Table of contents entries: 2",
		"Module 1: Risk Basics",
		"1 section, 1 question",
		"Module 2: Position Sizing",
		"coming_soon",
		"academy_content.json",
		"pdf_raw_text.txt",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestModuleLine(t *testing.T) {
	full := &outline.FullModule{ModuleNumber: 3, Title: "Psychology", Sections: []outline.Section{}, QuizQuestions: []outline.QuizQuestion{}}
	if got := ModuleLine(full); !strings.Contains(got, "Module 3: Psychology") || !strings.Contains(got, "0 sections, 0 questions") {
		t.Errorf("ModuleLine(full) = %q", got)
	}
}
