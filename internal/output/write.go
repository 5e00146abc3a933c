package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mptwarrior/coursextract/internal/outline"
)

// WriteResult encodes result in format and writes it to path. With validate
// set the encoded bytes are checked against the result schema first, and
// nothing is written when the check fails.
func WriteResult(path string, format Format, result *outline.ExtractionResult, validate bool) error {
	data, err := Marshal(format, result)
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	if validate {
		if err := Validate(format, data); err != nil {
			return err
		}
	}
	return writeFile(path, data)
}

// WriteRawText writes the concatenated document text to path.
func WriteRawText(path, text string) error {
	return writeFile(path, []byte(text))
}

// ValidateFile checks a result file written by WriteResult. The format is
// taken from the file extension.
func ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return Validate(FormatForPath(path), data)
}

// FormatForPath guesses a Format from a file extension, defaulting to JSON.
func FormatForPath(path string) Format {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
