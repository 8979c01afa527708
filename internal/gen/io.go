package gen

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteSuite saves a dataset to path as indented JSON.
func WriteSuite(path string, s Suite) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling dataset: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing dataset %s: %w", path, err)
	}
	return nil
}

// LoadSuite reads a dataset previously written by WriteSuite.
func LoadSuite(path string) (Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Suite{}, fmt.Errorf("reading dataset %s: %w", path, err)
	}
	var s Suite
	if err := json.Unmarshal(data, &s); err != nil {
		return Suite{}, fmt.Errorf("parsing dataset %s: %w", path, err)
	}
	return s, nil
}
