package scoring

import (
	"math"

	"github.com/ismaelallamtaoui/eco-score/domain"
)

// neutralScore is returned when a bracket has min == max: the window carries
// no signal, so the dimension neither helps nor hurts.
const neutralScore = 50

// Normalize maps a raw impact magnitude into a 0-100 goodness score against
// a bracket, inverted so that lower impact scores higher.
func Normalize(raw float64, b domain.Bounds) int {
	if b.Max == b.Min {
		return neutralScore
	}
	v := (raw - b.Min) / (b.Max - b.Min)
	bounded := clamp01(1 - clamp01(v))
	return int(math.Round(bounded * 100))
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
