// Package output serializes pipeline results: JSON summaries, console
// tables and the Excel report.
package output

import (
	"os"

	"github.com/goccy/go-json"
)

// ToJSON serializes v to JSON.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// WriteJSON serializes v and writes it to path.
func WriteJSON(path string, v any, pretty bool) error {
	data, err := ToJSON(v, pretty)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
