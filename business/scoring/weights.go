package scoring

import "github.com/ismaelallamtaoui/eco-score/domain"

// DefaultWeights returns the stock weight distribution used when no profile
// has been saved. Weights sum to 1.
func DefaultWeights() domain.WeightVector {
	return domain.WeightVector{
		domain.DimGHG:          0.4,
		domain.DimWater:        0.2,
		domain.DimLand:         0.15,
		domain.DimBiodiversity: 0.15,
		domain.DimPM:           0.05,
		domain.DimEutro:        0.05,
	}
}

// Labels are the display names carried in score breakdowns. Presentation
// hints only, not semantic content.
var Labels = map[domain.Dimension]string{
	domain.DimGHG:          "Climat",
	domain.DimWater:        "Eau",
	domain.DimLand:         "Sols",
	domain.DimBiodiversity: "Biodiversité",
	domain.DimPM:           "Particules",
	domain.DimEutro:        "Eutrophisation",
}
