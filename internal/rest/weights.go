package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/ismaelallamtaoui/eco-score/domain"
	"github.com/ismaelallamtaoui/eco-score/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	WeightsHandler struct {
		validate       *validator.Validate
		weightsService WeightsService
	}

	WeightsService interface {
		GetVector(ctx context.Context, name string) (domain.WeightVector, error)
		Save(ctx context.Context, name string, vector domain.WeightVector) error
	}

	WeightsRequest struct {
		GHG          float64 `json:"ghg" validate:"gte=0"`
		Water        float64 `json:"water" validate:"gte=0"`
		Land         float64 `json:"land" validate:"gte=0"`
		Biodiversity float64 `json:"biodiversity" validate:"gte=0"`
		PM           float64 `json:"pm" validate:"gte=0"`
		Eutro        float64 `json:"eutro" validate:"gte=0"`
	}
)

func NewWeightsHandler(weightsService WeightsService) *WeightsHandler {
	return &WeightsHandler{
		validate:       validator.New(),
		weightsService: weightsService,
	}
}

func (h *WeightsHandler) GetWeights(c echo.Context) error {
	profile := c.QueryParam("profile")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	vector, err := h.weightsService.GetVector(ctx, profile)
	if err != nil {
		logger.Error("failed to load weights", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(vector))
}

func (h *WeightsHandler) SaveWeights(c echo.Context) error {
	profile := c.QueryParam("profile")

	var req WeightsRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		logger.Error("Failed to validate weights request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	vector := domain.WeightVector{
		domain.DimGHG:          req.GHG,
		domain.DimWater:        req.Water,
		domain.DimLand:         req.Land,
		domain.DimBiodiversity: req.Biodiversity,
		domain.DimPM:           req.PM,
		domain.DimEutro:        req.Eutro,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	if err := h.weightsService.Save(ctx, profile, vector); err != nil {
		if err.Error() == "weights must be non-negative finite numbers" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		logger.Error("failed to save weights", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "weights saved",
		"weights": vector,
	})
}
