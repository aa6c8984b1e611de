package rates

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFallbackTable reads a YAML map of static rates keyed FROM_TO, e.g.
//
//	USD_EUR: 0.85
//	EUR_USD: 1.18
//
// Keys are upper-cased; non-positive rates are rejected.
func LoadFallbackTable(path string) (map[string]float64, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read fallback rates: %w", err)
	}

	var raw map[string]float64
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse fallback rates: %w", err)
	}

	table := make(map[string]float64, len(raw))
	for k, v := range raw {
		key := strings.ToUpper(strings.TrimSpace(k))
		parts := strings.Split(key, "_")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("invalid fallback rate key %q (want FROM_TO)", k)
		}
		if v <= 0 {
			return nil, fmt.Errorf("invalid fallback rate %s=%v", k, v)
		}
		table[key] = v
	}
	return table, nil
}
