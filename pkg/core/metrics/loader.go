package metrics

import (
	"encoding/json"
	"fmt"
	"os"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// LoadPatterns reads a pattern table from an HJSON (or JSON) file. Files
// are usually hand-edited per filing, so parsing is tolerant: a strict
// HJSON parse is tried first, then a repaired-JSON pass for inputs with
// broken quoting or stray commas.
func LoadPatterns(path string) ([]Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern table: %w", err)
	}

	var patterns []Pattern
	if err := hjson.Unmarshal(data, &patterns); err != nil {
		repaired, repErr := jsonrepair.RepairJSON(string(data))
		if repErr != nil {
			return nil, fmt.Errorf("failed to parse pattern table %s: %w", path, err)
		}
		if err := json.Unmarshal([]byte(repaired), &patterns); err != nil {
			return nil, fmt.Errorf("failed to parse pattern table %s after repair: %w", path, err)
		}
	}

	if len(patterns) == 0 {
		return nil, fmt.Errorf("pattern table %s is empty", path)
	}
	for i, p := range patterns {
		if p.Key == "" || p.Expr == "" {
			return nil, fmt.Errorf("pattern table %s: entry %d is missing key or expr", path, i)
		}
	}
	return patterns, nil
}
