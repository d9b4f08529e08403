package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ismaelallamtaoui/eco-score/domain"
)

// DefaultBrackets are the stock normalization windows shipped with the
// application. Production deployments override them with a brackets.json in
// the data directory, recomputed offline from dataset percentiles.
func DefaultBrackets() map[string]domain.BracketSet {
	return map[string]domain.BracketSet{
		"default": {
			domain.DimGHG:          {Min: 0.2, Max: 15},
			domain.DimWater:        {Min: 5, Max: 4000},
			domain.DimLand:         {Min: 0.1, Max: 20},
			domain.DimBiodiversity: {Min: 0.05, Max: 5},
			domain.DimPM:           {Min: 0.01, Max: 0.5},
			domain.DimEutro:        {Min: 0.01, Max: 0.5},
		},
		"dairy": {
			domain.DimGHG:          {Min: 0.2, Max: 5},
			domain.DimWater:        {Min: 5, Max: 2000},
			domain.DimLand:         {Min: 0.05, Max: 10},
			domain.DimBiodiversity: {Min: 0.02, Max: 3},
			domain.DimPM:           {Min: 0.005, Max: 0.2},
			domain.DimEutro:        {Min: 0.005, Max: 0.3},
		},
	}
}

// loadBrackets reads the bracket file if present, otherwise returns the
// compiled-in defaults. A file without a "default" set is rejected because
// the normalizer's category fallback depends on it.
func loadBrackets(path string) (map[string]domain.BracketSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultBrackets(), nil
		}
		return nil, fmt.Errorf("failed to read brackets file: %w", err)
	}

	var brackets map[string]domain.BracketSet
	if err := json.Unmarshal(data, &brackets); err != nil {
		return nil, fmt.Errorf("failed to parse brackets file: %w", err)
	}

	// Lookups are case-folded, so the keys are stored lowercase.
	folded := make(map[string]domain.BracketSet, len(brackets))
	for cat, set := range brackets {
		for dim, b := range set {
			if b.Min > b.Max {
				return nil, fmt.Errorf("bracket %s/%s: min %v greater than max %v", cat, dim, b.Min, b.Max)
			}
		}
		folded[strings.ToLower(cat)] = set
	}

	if _, ok := folded["default"]; !ok {
		return nil, errors.New("brackets file has no default set")
	}

	return folded, nil
}
