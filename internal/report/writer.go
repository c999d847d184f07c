package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// WriteJSON writes report as indented UTF-8 JSON to path, creating parent
// directories as needed.
func WriteJSON(path string, report any) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	b, err := EncodeIndent(report)
	if err != nil {
		return err
	}
	return os.WriteFile(path, append([]byte(b), '\n'), 0o644)
}

// EncodeIndent renders report as two-space-indented JSON without HTML
// escaping; also used for console summaries.
func EncodeIndent(report any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
