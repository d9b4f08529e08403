package scoring

import (
	"testing"

	"github.com/ismaelallamtaoui/eco-score/domain"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name   string
		raw    float64
		bounds domain.Bounds
		want   int
	}{
		{"at min scores 100", 0.2, domain.Bounds{Min: 0.2, Max: 5}, 100},
		{"at max scores 0", 5, domain.Bounds{Min: 0.2, Max: 5}, 0},
		{"below min clamps to 100", -10, domain.Bounds{Min: 0.2, Max: 5}, 100},
		{"above max clamps to 0", 99, domain.Bounds{Min: 0.2, Max: 5}, 0},
		{"interior value rounds", 1.0, domain.Bounds{Min: 0.2, Max: 5}, 83},
		{"degenerate bracket is neutral", 7, domain.Bounds{Min: 3, Max: 3}, 50},
		{"degenerate zero bracket is neutral", 0, domain.Bounds{}, 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.raw, tc.bounds)
			if got != tc.want {
				t.Errorf("Normalize(%v, %+v) = %d, want %d", tc.raw, tc.bounds, got, tc.want)
			}
		})
	}
}

func TestNormalizeMonotonic(t *testing.T) {
	b := domain.Bounds{Min: 1, Max: 40}
	prev := 101
	for raw := 0.0; raw <= 50; raw += 0.5 {
		got := Normalize(raw, b)
		if got < 0 || got > 100 {
			t.Fatalf("Normalize(%v) = %d, outside [0, 100]", raw, got)
		}
		if got > prev {
			t.Fatalf("Normalize(%v) = %d, rose above previous %d", raw, got, prev)
		}
		prev = got
	}
}
