package rest

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ismaelallamtaoui/eco-score/domain"
	"github.com/ismaelallamtaoui/eco-score/pkg/logger"
	"github.com/ismaelallamtaoui/eco-score/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

type (
	ScoresHandler struct {
		validate      *validator.Validate
		scoresService ScoresService
		timeout       time.Duration
	}

	ScoresService interface {
		ScoreProduct(ctx context.Context, gtin string, month int, profile string) (domain.ScoreResult, bool, error)
		ScoreBatch(ctx context.Context, gtins []string, month int, profile string) ([]domain.ScoreResult, error)
		ExportAll(ctx context.Context, month int, profile string) (int, error)
	}

	BatchScoreQuery struct {
		GTINs   string `query:"gtins" validate:"required"`
		Month   int    `query:"month"`
		Profile string `query:"profile"`
	}

	ExportRequest struct {
		Month   int    `json:"month"`
		Profile string `json:"profile"`
	}
)

func NewScoresHandler(scoresService ScoresService) *ScoresHandler {
	return &ScoresHandler{
		validate:      validator.New(),
		scoresService: scoresService,
		timeout:       10 * time.Second,
	}
}

// referenceMonth resolves the month query parameter, defaulting to the
// current month as the original pages did.
func referenceMonth(c echo.Context) int {
	if raw := c.QueryParam("month"); raw != "" {
		if m, err := strconv.Atoi(raw); err == nil {
			return m
		}
		return 0 // rejected downstream as invalid month
	}
	return int(time.Now().Month())
}

func (h *ScoresHandler) GetScore(c echo.Context) error {
	gtin := c.Param("gtin")
	month := referenceMonth(c)
	profile := c.QueryParam("profile")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	timer := prometheus.NewTimer(metrics.ScoreRequestLatency)
	result, cached, err := h.scoresService.ScoreProduct(ctx, gtin, month, profile)
	timer.ObserveDuration()
	if err != nil {
		if err.Error() == "product not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if err.Error() == "invalid month" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		logger.Error("failed to score product", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	cacheLabel := "miss"
	if cached {
		cacheLabel = "hit"
	}
	metrics.ScoresServedTotal.WithLabelValues(result.Letter, cacheLabel).Inc()

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

func (h *ScoresHandler) GetScores(c echo.Context) error {
	var q BatchScoreQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	month := q.Month
	if month == 0 {
		month = int(time.Now().Month())
	}

	gtins := []string{}
	for _, gtin := range strings.Split(q.GTINs, ",") {
		if gtin = strings.TrimSpace(gtin); gtin != "" {
			gtins = append(gtins, gtin)
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	timer := prometheus.NewTimer(metrics.ScoreRequestLatency)
	results, err := h.scoresService.ScoreBatch(ctx, gtins, month, q.Profile)
	timer.ObserveDuration()
	if err != nil {
		if err.Error() == "invalid month" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		logger.Error("failed to score batch", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	for _, r := range results {
		metrics.ScoresServedTotal.WithLabelValues(r.Letter, "batch").Inc()
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(results))
}

func (h *ScoresHandler) ExportScores(c echo.Context) error {
	var req ExportRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	month := req.Month
	if month == 0 {
		month = int(time.Now().Month())
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	count, err := h.scoresService.ExportAll(ctx, month, req.Profile)
	if err != nil {
		if err.Error() == "invalid month" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		logger.Error("failed to export scores", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "scores exported",
		"count":   count,
	})
}
