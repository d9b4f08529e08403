package weights

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/ismaelallamtaoui/eco-score/business/scoring"
	"github.com/ismaelallamtaoui/eco-score/domain"
	"github.com/ismaelallamtaoui/eco-score/pkg/logger"
)

// DefaultProfileName is the profile used when a caller names none.
const DefaultProfileName = "default"

// WeightsRepository contract interface
type WeightsRepository interface {
	FindByName(ctx context.Context, name string) (domain.WeightProfile, bool, error)
	Upsert(ctx context.Context, profile *domain.WeightProfile) error
}

// CacheInvalidator drops derived results that depend on the weights.
type CacheInvalidator interface {
	InvalidateAll(ctx context.Context) error
}

type weightsService struct {
	weightsRepo WeightsRepository
	invalidator CacheInvalidator
}

// NewWeightsService builds the weight-profile service. invalidator may be
// nil when no score cache is wired.
func NewWeightsService(weightsRepo WeightsRepository, invalidator CacheInvalidator) *weightsService {
	return &weightsService{
		weightsRepo: weightsRepo,
		invalidator: invalidator,
	}
}

// GetVector returns the weight vector for a profile, falling back to the
// stock weights when no row is stored. The engine treats the result as
// read-only input.
func (s *weightsService) GetVector(ctx context.Context, name string) (domain.WeightVector, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if name == "" {
		name = DefaultProfileName
	}

	profile, found, err := s.weightsRepo.FindByName(ctx, name)
	if err != nil {
		logger.Error("failed to load weight profile", err)
		return nil, err
	}
	if !found {
		return scoring.DefaultWeights(), nil
	}

	return profile.Vector(), nil
}

// Save validates and persists a weight vector under a profile name, then
// invalidates cached scores.
func (s *weightsService) Save(ctx context.Context, name string, vector domain.WeightVector) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if name == "" {
		name = DefaultProfileName
	}

	sum := 0.0
	for dim, w := range vector {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			logger.Error("invalid weight", "dimension", dim, "weight", w)
			return errors.New("weights must be non-negative finite numbers")
		}
		sum += w
	}
	// Assumed, not enforced, to sum to 1.
	if math.Abs(sum-1) > 0.01 {
		logger.Warn("weight vector does not sum to 1", "profile", name, "sum", sum)
	}

	profile := &domain.WeightProfile{
		Name:         name,
		GHG:          vector[domain.DimGHG],
		Water:        vector[domain.DimWater],
		Land:         vector[domain.DimLand],
		Biodiversity: vector[domain.DimBiodiversity],
		PM:           vector[domain.DimPM],
		Eutro:        vector[domain.DimEutro],
	}

	if err := s.weightsRepo.Upsert(ctx, profile); err != nil {
		logger.Error("failed to save weight profile", err)
		return fmt.Errorf("failed to save weight profile: %w", err)
	}

	if s.invalidator != nil {
		if err := s.invalidator.InvalidateAll(ctx); err != nil {
			logger.Warn("failed to invalidate score cache after weight change", err)
		}
	}

	logger.Info("weight profile saved", "profile", name)

	return nil
}
