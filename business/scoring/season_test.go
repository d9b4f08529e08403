package scoring

import (
	"math"
	"testing"

	"github.com/ismaelallamtaoui/eco-score/domain"
)

func TestSeasonFactor(t *testing.T) {
	rules := []domain.SeasonalityRule{
		{Category: "Tomato", Month: 1, Factor: 0.5},
		{Category: "tomato", Month: 1, Factor: 0.9}, // shadowed by the first row
		{Category: "tomato", Month: 7, Factor: 1.0},
		{Category: "berry", Month: 1, Factor: 0.02}, // below floor
		{Category: "berry", Month: 2, Factor: -3},
		{Category: "berry", Month: 3, Factor: math.NaN()},
		{Category: "berry", Month: 4, Factor: math.Inf(1)},
		{Category: "melon", Month: 12, Factor: 4.2}, // above ceiling
	}

	cases := []struct {
		name     string
		category string
		month    int
		want     float64
	}{
		{"no matching rule", "carrot", 1, 1},
		{"case insensitive match", "TOMATO", 1, 0.5},
		{"first row wins on duplicates", "tomato", 1, 0.5},
		{"in season", "tomato", 7, 1},
		{"clamped to floor", "berry", 1, 0.1},
		{"negative factor falls back to 1", "berry", 2, 1},
		{"NaN factor falls back to 1", "berry", 3, 1},
		{"Inf factor falls back to 1", "berry", 4, 1},
		{"clamped to ceiling", "melon", 12, 1},
		{"month mismatch", "tomato", 2, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SeasonFactor(tc.category, tc.month, rules)
			if got != tc.want {
				t.Errorf("SeasonFactor(%q, %d) = %v, want %v", tc.category, tc.month, got, tc.want)
			}
			if got < 0.1 || got > 1 {
				t.Errorf("SeasonFactor(%q, %d) = %v, outside [0.1, 1]", tc.category, tc.month, got)
			}
		})
	}
}
