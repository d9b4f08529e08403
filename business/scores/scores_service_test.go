package scores

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ismaelallamtaoui/eco-score/business/scoring"
	"github.com/ismaelallamtaoui/eco-score/domain"
)

type fakeRefData struct {
	products map[string]domain.Product
	ctx      *scoring.ReferenceContext
}

func (f *fakeRefData) Context(month int) *scoring.ReferenceContext {
	c := *f.ctx
	c.Month = month
	return &c
}

func (f *fakeRefData) Product(gtin string) (domain.Product, bool) {
	p, ok := f.products[gtin]
	return p, ok
}

func (f *fakeRefData) AllProducts() []domain.Product {
	out := make([]domain.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out
}

type fakeWeights struct{}

func (fakeWeights) GetVector(ctx context.Context, name string) (domain.WeightVector, error) {
	return scoring.DefaultWeights(), nil
}

type fakeCache struct {
	store map[string]domain.ScoreResult
}

func (f *fakeCache) key(gtin string, month int, profile string) string {
	return fmt.Sprintf("%s|%d|%s", gtin, month, profile)
}

func (f *fakeCache) Get(ctx context.Context, gtin string, month int, profile string) (domain.ScoreResult, bool, error) {
	r, ok := f.store[f.key(gtin, month, profile)]
	return r, ok, nil
}

func (f *fakeCache) Set(ctx context.Context, gtin string, month int, profile string, result domain.ScoreResult) error {
	f.store[f.key(gtin, month, profile)] = result
	return nil
}

type fakeExport struct {
	pushed []domain.ScoreResult
	err    error
}

func (f *fakeExport) PushScores(month int, scores []domain.ScoreResult) error {
	f.pushed = scores
	return f.err
}

func newFixture() (*fakeRefData, *fakeCache, *fakeExport) {
	refData := &fakeRefData{
		products: map[string]domain.Product{
			"111": {GTIN: "111", Category: "dairy", LCARefID: "LCA-1"},
			"222": {GTIN: "222", Category: "dairy", LCARefID: "missing"},
		},
		ctx: &scoring.ReferenceContext{
			LCAByRef: map[string]domain.LCAProfile{
				"LCA-1": {Ref: "LCA-1", GHG: 1, Water: 100, Land: 1, PM: 0.01, Eutro: 0.01, Biodiversity: 0.1},
			},
			Brackets: map[string]domain.BracketSet{
				"default": {
					domain.DimGHG:          {Min: 0, Max: 10},
					domain.DimWater:        {Min: 0, Max: 1000},
					domain.DimLand:         {Min: 0, Max: 10},
					domain.DimBiodiversity: {Min: 0, Max: 1},
					domain.DimPM:           {Min: 0, Max: 0.5},
					domain.DimEutro:        {Min: 0, Max: 0.5},
				},
			},
		},
	}
	return refData, &fakeCache{store: map[string]domain.ScoreResult{}}, &fakeExport{}
}

func TestScoreProductCachesResult(t *testing.T) {
	refData, cache, _ := newFixture()
	svc := NewScoresService(refData, fakeWeights{}, cache, nil)

	first, hit, err := svc.ScoreProduct(context.Background(), "111", 4, "default")
	if err != nil {
		t.Fatalf("ScoreProduct: %v", err)
	}
	if hit {
		t.Error("first call should miss the cache")
	}

	second, hit, err := svc.ScoreProduct(context.Background(), "111", 4, "default")
	if err != nil {
		t.Fatalf("ScoreProduct (cached): %v", err)
	}
	if !hit {
		t.Error("second call should hit the cache")
	}
	if first.Score != second.Score || first.Letter != second.Letter {
		t.Errorf("cached result differs: %+v vs %+v", first, second)
	}
}

func TestScoreProductCacheScopedByMonth(t *testing.T) {
	refData, cache, _ := newFixture()
	svc := NewScoresService(refData, fakeWeights{}, cache, nil)

	if _, hit, err := svc.ScoreProduct(context.Background(), "111", 4, "default"); err != nil || hit {
		t.Fatalf("month 4 first call: hit=%v err=%v, want fresh compute", hit, err)
	}
	// Seasonality makes scores month-dependent; a different month must not
	// reuse the month-4 entry.
	if _, hit, err := svc.ScoreProduct(context.Background(), "111", 5, "default"); err != nil || hit {
		t.Fatalf("month 5: hit=%v err=%v, want cache miss", hit, err)
	}
	if _, hit, err := svc.ScoreProduct(context.Background(), "111", 4, "default"); err != nil || !hit {
		t.Fatalf("month 4 again: hit=%v err=%v, want cache hit", hit, err)
	}
}

func TestScoreProductUnknownGTIN(t *testing.T) {
	refData, _, _ := newFixture()
	svc := NewScoresService(refData, fakeWeights{}, nil, nil)

	_, _, err := svc.ScoreProduct(context.Background(), "404", 4, "default")
	if err == nil || err.Error() != "product not found" {
		t.Errorf("want product not found, got %v", err)
	}
}

func TestScoreProductInvalidMonth(t *testing.T) {
	refData, _, _ := newFixture()
	svc := NewScoresService(refData, fakeWeights{}, nil, nil)

	if _, _, err := svc.ScoreProduct(context.Background(), "111", 13, "default"); err == nil {
		t.Error("want error for month 13")
	}
	if _, _, err := svc.ScoreProduct(context.Background(), "111", 0, "default"); err == nil {
		t.Error("want error for month 0")
	}
}

func TestScoreProductMissingLCAIsDegenerate(t *testing.T) {
	refData, _, _ := newFixture()
	svc := NewScoresService(refData, fakeWeights{}, nil, nil)

	got, _, err := svc.ScoreProduct(context.Background(), "222", 4, "default")
	if err != nil {
		t.Fatalf("ScoreProduct: %v", err)
	}
	if got.Score != 0 || got.Letter != "E" || len(got.Breakdown) != 0 {
		t.Errorf("missing LCA should score 0/E with empty breakdown, got %+v", got)
	}
}

func TestScoreBatchSkipsUnknown(t *testing.T) {
	refData, _, _ := newFixture()
	svc := NewScoresService(refData, fakeWeights{}, nil, nil)

	results, err := svc.ScoreBatch(context.Background(), []string{"111", "404", "222"}, 4, "default")
	if err != nil {
		t.Fatalf("ScoreBatch: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("got %d results, want 2", len(results))
	}
}

func TestExportAll(t *testing.T) {
	refData, _, export := newFixture()
	svc := NewScoresService(refData, fakeWeights{}, nil, export)

	count, err := svc.ExportAll(context.Background(), 4, "default")
	if err != nil {
		t.Fatalf("ExportAll: %v", err)
	}
	if count != 2 || len(export.pushed) != 2 {
		t.Errorf("pushed %d/%d scores, want 2", count, len(export.pushed))
	}
}

func TestExportAllPropagatesWebhookError(t *testing.T) {
	refData, _, export := newFixture()
	export.err = errors.New("boom")
	svc := NewScoresService(refData, fakeWeights{}, nil, export)

	if _, err := svc.ExportAll(context.Background(), 4, "default"); err == nil {
		t.Error("want webhook error to propagate")
	}
}
