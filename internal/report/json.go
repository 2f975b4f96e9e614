package report

import (
	"encoding/json"
	"fmt"

	"github.com/prettymuchbryce/mobiletest/internal/fs"
)

// Encode renders the report as indented JSON.
func Encode(rep *Report) ([]byte, error) {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// WriteJSON writes the report to path on the given filesystem.
func WriteJSON(filesystem fs.FileSystem, path string, rep *Report) error {
	data, err := Encode(rep)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := filesystem.WriteFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}
