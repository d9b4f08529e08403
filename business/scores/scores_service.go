package scores

import (
	"context"
	"errors"
	"fmt"

	"github.com/ismaelallamtaoui/eco-score/business/scoring"
	"github.com/ismaelallamtaoui/eco-score/domain"
	"github.com/ismaelallamtaoui/eco-score/pkg/logger"
)

// ReferenceData is the read-only view of the loaded dataset.
type ReferenceData interface {
	Context(month int) *scoring.ReferenceContext
	Product(gtin string) (domain.Product, bool)
	AllProducts() []domain.Product
}

// WeightsProvider yields the weight vector for a named profile.
type WeightsProvider interface {
	GetVector(ctx context.Context, name string) (domain.WeightVector, error)
}

// ScoreCache is the optional redis-backed result cache.
type ScoreCache interface {
	Get(ctx context.Context, gtin string, month int, profile string) (domain.ScoreResult, bool, error)
	Set(ctx context.Context, gtin string, month int, profile string, result domain.ScoreResult) error
}

// ExportRepository pushes a full score export to the partner webhook.
type ExportRepository interface {
	PushScores(month int, scores []domain.ScoreResult) error
}

type scoresService struct {
	refData ReferenceData
	weights WeightsProvider
	cache   ScoreCache
	export  ExportRepository
}

// NewScoresService wires the scoring engine to its collaborators. cache and
// export may be nil (caching and webhook export are then disabled).
func NewScoresService(refData ReferenceData, weights WeightsProvider, cache ScoreCache, export ExportRepository) *scoresService {
	return &scoresService{
		refData: refData,
		weights: weights,
		cache:   cache,
		export:  export,
	}
}

// ScoreProduct scores one catalog product for a reference month and weight
// profile. The bool reports whether the result came from cache.
func (s *scoresService) ScoreProduct(ctx context.Context, gtin string, month int, profile string) (domain.ScoreResult, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.ScoreResult{}, false, fmt.Errorf("context error: %w", err)
	}

	if month < 1 || month > 12 {
		return domain.ScoreResult{}, false, errors.New("invalid month")
	}

	product, ok := s.refData.Product(gtin)
	if !ok {
		return domain.ScoreResult{}, false, errors.New("product not found")
	}

	if s.cache != nil {
		cached, hit, err := s.cache.Get(ctx, gtin, month, profile)
		if err != nil {
			logger.Warn("score cache read failed", err)
		} else if hit {
			return cached, true, nil
		}
	}

	weights, err := s.weights.GetVector(ctx, profile)
	if err != nil {
		return domain.ScoreResult{}, false, err
	}

	result := scoring.Score(product, s.refData.Context(month), weights)

	if s.cache != nil {
		if err := s.cache.Set(ctx, gtin, month, profile, result); err != nil {
			logger.Warn("score cache write failed", err)
		}
	}

	return result, false, nil
}

// ScoreBatch scores a list of gtins, skipping unknown ones.
func (s *scoresService) ScoreBatch(ctx context.Context, gtins []string, month int, profile string) ([]domain.ScoreResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	results := make([]domain.ScoreResult, 0, len(gtins))
	for _, gtin := range gtins {
		result, _, err := s.ScoreProduct(ctx, gtin, month, profile)
		if err != nil {
			if err.Error() == "product not found" {
				logger.Warn("skipping unknown gtin in batch", "gtin", gtin)
				continue
			}
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}

// ExportAll scores the whole catalog and pushes the export to the partner
// webhook. Returns the number of scores pushed.
func (s *scoresService) ExportAll(ctx context.Context, month int, profile string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	if s.export == nil {
		return 0, errors.New("export is not configured")
	}

	weights, err := s.weights.GetVector(ctx, profile)
	if err != nil {
		return 0, err
	}

	refCtx := s.refData.Context(month)
	products := s.refData.AllProducts()
	results := make([]domain.ScoreResult, 0, len(products))
	for _, p := range products {
		results = append(results, scoring.Score(p, refCtx, weights))
	}

	if err := s.export.PushScores(month, results); err != nil {
		logger.Error("failed to push score export", err)
		return 0, fmt.Errorf("failed to push score export: %w", err)
	}

	logger.Info("score export pushed", "count", len(results), "month", month, "profile", profile)

	return len(results), nil
}
