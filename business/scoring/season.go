package scoring

import (
	"math"
	"strings"

	"github.com/ismaelallamtaoui/eco-score/domain"
)

// Floor on the seasonality factor so a malformed rule can never blow the
// effective ghg burden up without bound.
const minSeasonFactor = 0.1

// SeasonFactor returns the penalty factor in (0,1] for buying a category in
// a given month. No matching rule means in season (factor 1). When several
// rules cover the same (category, month) the first one in table order wins.
func SeasonFactor(category string, month int, rules []domain.SeasonalityRule) float64 {
	for _, r := range rules {
		if r.Month != month || !strings.EqualFold(r.Category, category) {
			continue
		}
		f := r.Factor
		if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
			return 1
		}
		return math.Min(1, math.Max(minSeasonFactor, f))
	}
	return 1
}
