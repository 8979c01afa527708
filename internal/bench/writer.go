package bench

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteResults writes one JSON file per problem plus a combined file into
// dir, creating it if needed.
func WriteResults(dir string, results Results) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating results dir: %w", err)
	}

	files := map[string]interface{}{
		"3sat_results.json":           results.SAT,
		"vertex_cover_results.json":   results.VertexCover,
		"max_clique_results.json":     results.Clique,
		"graph_coloring_results.json": results.Coloring,
		"set_cover_results.json":      results.SetCover,
		"all_results.json":            results,
	}
	for name, payload := range files {
		if err := writeJSON(filepath.Join(dir, name), payload); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(path string, payload interface{}) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
