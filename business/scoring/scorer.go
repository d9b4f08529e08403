package scoring

import (
	"math"

	"github.com/ismaelallamtaoui/eco-score/domain"
)

// Score is the main entry point of the engine: product plus reference
// tables plus a weight vector in, one well-formed ScoreResult out. It never
// fails; every malformed input is absorbed by a substitution rule. A product
// without an LCA profile yields the degenerate 0/E result.
func Score(p domain.Product, ctx *ReferenceContext, weights domain.WeightVector) domain.ScoreResult {
	raw, ok := Aggregate(p, ctx)
	if !ok {
		return domain.ScoreResult{
			GTIN:         p.GTIN,
			Score:        0,
			Letter:       "E",
			Breakdown:    []domain.Contribution{},
			SeasonFactor: 1,
			Note:         "No LCA",
		}
	}

	bracket := ctx.Bracket(p.Category)

	total := 0
	breakdown := make([]domain.Contribution, 0, len(domain.Dimensions))
	for _, dim := range domain.Dimensions {
		normalized := Normalize(raw.Magnitudes[dim], bracket[dim])
		w := weights[dim]
		contribution := int(math.Round(float64(normalized) * w))
		total += contribution
		breakdown = append(breakdown, domain.Contribution{
			Key:          dim,
			Label:        Labels[dim],
			Normalized:   normalized,
			Weight:       w,
			Contribution: contribution,
		})
	}

	adj := 0
	if sup, ok := ctx.SuppliersByID[p.SupplierID]; ok {
		adj = SupplierAdjustment(sup)
	}

	score := total + adj
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return domain.ScoreResult{
		GTIN:         p.GTIN,
		Score:        score,
		Letter:       Letter(score),
		Breakdown:    breakdown,
		Adjustment:   adj,
		SeasonFactor: raw.SeasonFactor,
	}
}

// Letter buckets a 0-100 score into the A-E grade. Bands are inclusive on
// the lower bound, checked top-down.
func Letter(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 75:
		return "B"
	case score >= 60:
		return "C"
	case score >= 45:
		return "D"
	default:
		return "E"
	}
}
