package scoring

import (
	"math"
	"reflect"
	"testing"

	"github.com/ismaelallamtaoui/eco-score/domain"
)

func testContext() *ReferenceContext {
	flat := domain.BracketSet{
		domain.DimGHG:          {Min: 0, Max: 100},
		domain.DimWater:        {Min: 0, Max: 4000},
		domain.DimLand:         {Min: 0, Max: 20},
		domain.DimBiodiversity: {Min: 0, Max: 5},
		domain.DimPM:           {Min: 0, Max: 0.5},
		domain.DimEutro:        {Min: 0, Max: 0.5},
	}
	dairy := domain.BracketSet{
		domain.DimGHG:          {Min: 0.2, Max: 5},
		domain.DimWater:        {Min: 5, Max: 2000},
		domain.DimLand:         {Min: 0.05, Max: 10},
		domain.DimBiodiversity: {Min: 0.02, Max: 3},
		domain.DimPM:           {Min: 0.005, Max: 0.2},
		domain.DimEutro:        {Min: 0.005, Max: 0.3},
	}
	return &ReferenceContext{
		LCAByRef: map[string]domain.LCAProfile{
			"LCA-1":  {Ref: "LCA-1", GHG: 40, Water: 200, Land: 2, PM: 0.05, Eutro: 0.05, Biodiversity: 0.5},
			"LCA-2":  {Ref: "LCA-2", GHG: 1.0, Water: 100, Land: 1, PM: 0.01, Eutro: 0.01, Biodiversity: 0.1},
			"LCA-NB": {Ref: "LCA-NB", GHG: 40, Water: 200, Land: 10, PM: 0.05, Eutro: 0.05, Biodiversity: math.NaN()},
		},
		SeasonRules: []domain.SeasonalityRule{
			{Category: "tomato", Month: 1, Factor: 0.5},
		},
		TransportByGTIN: map[string][]domain.TransportLeg{
			"111": {
				{GTIN: "111", Mode: "truck", Km: 100, EmissionFactor: 0.1},
				{GTIN: "111", Mode: "ship", Km: 1000, EmissionFactor: 0.01},
				{GTIN: "111", Mode: "bogus", Km: -5, EmissionFactor: 3}, // ignored
			},
		},
		SuppliersByID: map[string]domain.Supplier{
			"SUP-ALL": {ID: "SUP-ALL", Certs: "AB FAIR", Practices: "agroecology"},
		},
		Brackets: map[string]domain.BracketSet{
			"default": flat,
			"dairy":   dairy,
		},
		Month: 1,
	}
}

func ghgOnlyWeights() domain.WeightVector {
	return domain.WeightVector{domain.DimGHG: 1}
}

func TestScoreMissingLCA(t *testing.T) {
	ctx := testContext()
	p := domain.Product{GTIN: "404", Name: "Ghost", Category: "dairy", LCARefID: "nope"}

	got := Score(p, ctx, DefaultWeights())

	if got.Score != 0 || got.Letter != "E" {
		t.Errorf("missing LCA: got score=%d letter=%q, want 0/E", got.Score, got.Letter)
	}
	if len(got.Breakdown) != 0 {
		t.Errorf("missing LCA: breakdown has %d entries, want 0", len(got.Breakdown))
	}
	if got.Note != "No LCA" {
		t.Errorf("missing LCA: note = %q, want %q", got.Note, "No LCA")
	}
}

func TestScoreGHGOnlyWeights(t *testing.T) {
	ctx := testContext()
	// ghg 40 in the default [0, 100] bracket normalizes to 60.
	p := domain.Product{GTIN: "222", Category: "general", LCARefID: "LCA-1"}

	got := Score(p, ctx, ghgOnlyWeights())

	if got.Score != 60 || got.Letter != "C" {
		t.Errorf("got score=%d letter=%q, want 60/C", got.Score, got.Letter)
	}
	if got.Adjustment != 0 {
		t.Errorf("unknown supplier: adjustment = %d, want 0", got.Adjustment)
	}
}

func TestScoreDairyBracketExample(t *testing.T) {
	ctx := testContext()
	p := domain.Product{GTIN: "333", Category: "dairy", LCARefID: "LCA-2"}

	got := Score(p, ctx, DefaultWeights())

	if got.Breakdown[0].Key != domain.DimGHG {
		t.Fatalf("breakdown[0] is %q, want ghg first", got.Breakdown[0].Key)
	}
	// round((1 - (1.0-0.2)/(5-0.2)) * 100) = 83
	if got.Breakdown[0].Normalized != 83 {
		t.Errorf("normalized ghg = %d, want 83", got.Breakdown[0].Normalized)
	}
	if got.SeasonFactor != 1 {
		t.Errorf("season factor = %v, want 1 (no dairy rule)", got.SeasonFactor)
	}
}

func TestScoreSupplierBonusStacks(t *testing.T) {
	ctx := testContext()
	base := domain.Product{GTIN: "222", Category: "general", LCARefID: "LCA-1"}
	bonus := base
	bonus.SupplierID = "SUP-ALL"

	baseRes := Score(base, ctx, ghgOnlyWeights())
	bonusRes := Score(bonus, ctx, ghgOnlyWeights())

	if bonusRes.Adjustment != 7 {
		t.Errorf("adjustment = %d, want 7", bonusRes.Adjustment)
	}
	if bonusRes.Score != baseRes.Score+7 {
		t.Errorf("score = %d, want base %d + 7", bonusRes.Score, baseRes.Score)
	}
}

func TestScoreClampsAt100(t *testing.T) {
	ctx := testContext()
	ctx.LCAByRef["LCA-0"] = domain.LCAProfile{Ref: "LCA-0"} // all-zero impacts normalize to 100
	p := domain.Product{GTIN: "555", Category: "general", LCARefID: "LCA-0", SupplierID: "SUP-ALL"}

	got := Score(p, ctx, ghgOnlyWeights())

	if got.Score != 100 || got.Letter != "A" {
		t.Errorf("got score=%d letter=%q, want clamped 100/A", got.Score, got.Letter)
	}
}

func TestScoreTransportAndSeason(t *testing.T) {
	ctx := testContext()
	// ghg 40 + transport (100*0.1 + 1000*0.01) = 60, then / 0.5 season = 120,
	// clamped past the default max -> normalized 0.
	p := domain.Product{GTIN: "111", Category: "tomato", LCARefID: "LCA-1"}

	got := Score(p, ctx, ghgOnlyWeights())

	if got.SeasonFactor != 0.5 {
		t.Errorf("season factor = %v, want 0.5", got.SeasonFactor)
	}
	if got.Breakdown[0].Normalized != 0 {
		t.Errorf("normalized ghg = %d, want 0", got.Breakdown[0].Normalized)
	}
}

func TestScoreBiodiversityProxy(t *testing.T) {
	ctx := testContext()
	p := domain.Product{GTIN: "666", Category: "general", LCARefID: "LCA-NB"}

	got := Score(p, ctx, DefaultWeights())

	// land 10 * 0.2 = 2 in the default [0, 5] bracket -> 1 - 0.4 -> 60
	var bio domain.Contribution
	for _, c := range got.Breakdown {
		if c.Key == domain.DimBiodiversity {
			bio = c
		}
	}
	if bio.Normalized != 60 {
		t.Errorf("biodiversity normalized = %d, want 60 via land proxy", bio.Normalized)
	}
}

func TestScoreDeterministic(t *testing.T) {
	ctx := testContext()
	p := domain.Product{GTIN: "111", Category: "tomato", LCARefID: "LCA-1", SupplierID: "SUP-ALL"}
	w := DefaultWeights()

	first := Score(p, ctx, w)
	second := Score(p, ctx, w)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("two invocations differ:\n%+v\n%+v", first, second)
	}
}

func TestScoreAlwaysWellFormed(t *testing.T) {
	ctx := testContext()
	products := []domain.Product{
		{GTIN: "a", Category: "dairy", LCARefID: "LCA-1"},
		{GTIN: "111", Category: "tomato", LCARefID: "LCA-2", SupplierID: "SUP-ALL"},
		{GTIN: "b", Category: "", LCARefID: "LCA-NB"},
		{GTIN: "c", Category: "unknown-cat", LCARefID: "missing"},
	}
	letters := map[string][2]int{"A": {90, 100}, "B": {75, 89}, "C": {60, 74}, "D": {45, 59}, "E": {0, 44}}

	for _, p := range products {
		got := Score(p, ctx, DefaultWeights())
		if got.Score < 0 || got.Score > 100 {
			t.Errorf("%s: score %d outside [0, 100]", p.GTIN, got.Score)
		}
		band, ok := letters[got.Letter]
		if !ok {
			t.Fatalf("%s: unknown letter %q", p.GTIN, got.Letter)
		}
		if got.Score < band[0] || got.Score > band[1] {
			t.Errorf("%s: score %d inconsistent with letter %q", p.GTIN, got.Score, got.Letter)
		}
	}
}
