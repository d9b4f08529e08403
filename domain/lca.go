package domain

// LCAProfile holds the six per-unit impact magnitudes of one life-cycle
// assessment row. Many products can share one profile via LCARefID.
// Biodiversity is NaN when the source field is missing or unparseable;
// the scoring engine substitutes a land-based proxy in that case.
type LCAProfile struct {
	Ref          string  `json:"ref"`
	GHG          float64 `json:"ghg"`
	Water        float64 `json:"water"`
	Land         float64 `json:"land"`
	PM           float64 `json:"pm"`
	Eutro        float64 `json:"eutro"`
	Biodiversity float64 `json:"biodiversity"`
}
