package domain

// Contribution is one line of the per-dimension score breakdown. Label is a
// presentation hint only.
type Contribution struct {
	Key          Dimension `json:"key"`
	Label        string    `json:"label"`
	Normalized   int       `json:"normalized"`
	Weight       float64   `json:"weight"`
	Contribution int       `json:"contribution"`
}

// ScoreResult is the outcome of scoring one product. Created fresh per
// computation and never mutated afterwards.
type ScoreResult struct {
	GTIN         string         `json:"gtin,omitempty"`
	Score        int            `json:"score"`
	Letter       string         `json:"letter"`
	Breakdown    []Contribution `json:"breakdown"`
	Adjustment   int            `json:"adjustment"`
	SeasonFactor float64        `json:"season_factor"`
	Note         string         `json:"note,omitempty"`
}
