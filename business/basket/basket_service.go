package basket

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ismaelallamtaoui/eco-score/business/scoring"
	"github.com/ismaelallamtaoui/eco-score/domain"
	"github.com/ismaelallamtaoui/eco-score/pkg/logger"

	"github.com/google/uuid"
)

// BasketRepository contract interface
type BasketRepository interface {
	Create(ctx context.Context, basket *domain.Basket) error
	FindByToken(ctx context.Context, token string) (domain.Basket, error)
	FindItems(ctx context.Context, basketID uint64) ([]domain.BasketItem, error)
	UpsertItem(ctx context.Context, basketID uint64, gtin string, quantity float64) error
}

// ReferenceData is the slice of the loaded dataset the basket needs:
// catalog rows plus raw LCA magnitudes for footprint totals.
type ReferenceData interface {
	Context(month int) *scoring.ReferenceContext
	Product(gtin string) (domain.Product, bool)
}

// Scorer scores one product (cache-aware).
type Scorer interface {
	ScoreProduct(ctx context.Context, gtin string, month int, profile string) (domain.ScoreResult, bool, error)
}

type basketService struct {
	basketRepo BasketRepository
	refData    ReferenceData
	scorer     Scorer
}

func NewBasketService(basketRepo BasketRepository, refData ReferenceData, scorer Scorer) *basketService {
	return &basketService{
		basketRepo: basketRepo,
		refData:    refData,
		scorer:     scorer,
	}
}

// CreateBasket opens a new anonymous basket and returns its token.
func (s *basketService) CreateBasket(ctx context.Context) (domain.Basket, error) {
	if err := ctx.Err(); err != nil {
		return domain.Basket{}, fmt.Errorf("context error: %w", err)
	}

	basket := domain.Basket{
		Token:     uuid.NewString(),
		CreatedAt: time.Now(),
	}
	if err := s.basketRepo.Create(ctx, &basket); err != nil {
		logger.Error("failed to create basket", err)
		return domain.Basket{}, err
	}

	logger.Info("basket created", "token", basket.Token)

	return basket, nil
}

// SetItem sets the quantity of a catalog product in a basket. Quantity zero
// removes the line.
func (s *basketService) SetItem(ctx context.Context, token, gtin string, quantity float64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if quantity < 0 {
		return errors.New("quantity cannot be negative")
	}

	if _, ok := s.refData.Product(gtin); !ok {
		return errors.New("product not found")
	}

	basket, err := s.basketRepo.FindByToken(ctx, token)
	if err != nil {
		logger.Error("basket not found", err)
		return err
	}

	if err := s.basketRepo.UpsertItem(ctx, basket.ID, gtin, quantity); err != nil {
		logger.Error("failed to set basket item", err)
		return err
	}

	return nil
}

// Summary renders the whole basket: per-line footprint scaled by quantity,
// totals, average score and the swap suggestion. Footprint lines use the raw
// LCA magnitudes, not normalized scores.
func (s *basketService) Summary(ctx context.Context, token string, month int, profile string) (domain.BasketSummary, error) {
	if err := ctx.Err(); err != nil {
		return domain.BasketSummary{}, fmt.Errorf("context error: %w", err)
	}

	basket, err := s.basketRepo.FindByToken(ctx, token)
	if err != nil {
		return domain.BasketSummary{}, err
	}

	items, err := s.basketRepo.FindItems(ctx, basket.ID)
	if err != nil {
		logger.Error("failed to load basket items", err)
		return domain.BasketSummary{}, err
	}

	refCtx := s.refData.Context(month)

	summary := domain.BasketSummary{
		Token: token,
		Lines: []domain.BasketLine{},
	}
	totalScore := 0
	scored := 0
	hasBeef := false

	for _, item := range items {
		product, ok := s.refData.Product(item.GTIN)
		if !ok {
			logger.Warn("basket references unknown gtin", "gtin", item.GTIN)
			continue
		}

		result, _, err := s.scorer.ScoreProduct(ctx, item.GTIN, month, profile)
		if err != nil {
			return domain.BasketSummary{}, err
		}

		line := domain.BasketLine{
			GTIN:     item.GTIN,
			Name:     product.Name,
			Quantity: item.Quantity,
			Score:    result.Score,
			Letter:   result.Letter,
		}
		if lca, ok := refCtx.LCAByRef[product.LCARefID]; ok {
			line.KgCO2e = lca.GHG * item.Quantity
			line.WaterL = lca.Water * item.Quantity
		}

		summary.Lines = append(summary.Lines, line)
		summary.TotalKgCO2e += line.KgCO2e
		summary.TotalWaterL += line.WaterL
		totalScore += result.Score
		scored++

		if strings.Contains(strings.ToLower(product.Category), "beef") {
			hasBeef = true
		}
	}

	if scored > 0 {
		summary.AverageScore = int(math.Round(float64(totalScore) / float64(scored)))
	}
	if hasBeef {
		summary.Suggestion = "Remplacer un produit 'beef' par 'lentils' peut réduire le CO₂ d'environ 80%."
	}

	return summary, nil
}
