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
	BasketHandler struct {
		validate      *validator.Validate
		basketService BasketService
	}

	BasketService interface {
		CreateBasket(ctx context.Context) (domain.Basket, error)
		SetItem(ctx context.Context, token, gtin string, quantity float64) error
		Summary(ctx context.Context, token string, month int, profile string) (domain.BasketSummary, error)
	}

	BasketItemRequest struct {
		GTIN     string  `json:"gtin" validate:"required"`
		Quantity float64 `json:"quantity" validate:"gte=0"`
	}
)

func NewBasketHandler(basketService BasketService) *BasketHandler {
	return &BasketHandler{
		validate:      validator.New(),
		basketService: basketService,
	}
}

func (h *BasketHandler) CreateBasket(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	basket, err := h.basketService.CreateBasket(ctx)
	if err != nil {
		logger.Error("failed to create basket", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "basket created",
		"token":   basket.Token,
	})
}

func (h *BasketHandler) SetItem(c echo.Context) error {
	token := c.Param("token")

	var req BasketItemRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		logger.Error("Failed to validate basket item request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	if err := h.basketService.SetItem(ctx, token, req.GTIN, req.Quantity); err != nil {
		if err.Error() == "basket not found" || err.Error() == "product not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if err.Error() == "quantity cannot be negative" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		logger.Error("failed to set basket item", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "basket item updated",
		"gtin":    req.GTIN,
	})
}

func (h *BasketHandler) GetSummary(c echo.Context) error {
	token := c.Param("token")
	month := referenceMonth(c)
	profile := c.QueryParam("profile")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	summary, err := h.basketService.Summary(ctx, token, month, profile)
	if err != nil {
		if err.Error() == "basket not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if err.Error() == "invalid month" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		logger.Error("failed to build basket summary", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(summary))
}
