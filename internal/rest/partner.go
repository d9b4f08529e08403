package rest

import (
	"io"
	"net/http"

	"github.com/ismaelallamtaoui/eco-score/domain"
	"github.com/ismaelallamtaoui/eco-score/pkg/logger"
	"github.com/ismaelallamtaoui/eco-score/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	PartnerHandler struct {
		validate       *validator.Validate
		partnerService PartnerService
	}

	PartnerService interface {
		IssueToken(apiKey string) (string, error)
		PreviewCatalog(r io.Reader) ([]domain.Product, int, error)
	}

	PartnerTokenRequest struct {
		APIKey string `json:"api_key" validate:"required"`
	}
)

func NewPartnerHandler(partnerService PartnerService) *PartnerHandler {
	return &PartnerHandler{
		validate:       validator.New(),
		partnerService: partnerService,
	}
}

func (h *PartnerHandler) IssueToken(c echo.Context) error {
	var req PartnerTokenRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	token, err := h.partnerService.IssueToken(req.APIKey)
	if err != nil {
		if err.Error() == "invalid api key" {
			return c.JSON(http.StatusUnauthorized, ResponseError{Message: err.Error()})
		}
		logger.Error("failed to issue partner token", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "token issued",
		"token":   token,
	})
}

// UploadCatalog accepts a product CSV, either as a multipart "file" part or
// as a raw request body, and echoes back the validated preview rows.
func (h *PartnerHandler) UploadCatalog(c echo.Context) error {
	var reader io.Reader

	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			logger.Error("failed to open uploaded file", err)
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		defer f.Close()
		reader = f
	} else {
		reader = c.Request().Body
	}

	products, total, err := h.partnerService.PreviewCatalog(reader)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	metrics.PartnerUploadsTotal.Inc()

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "catalog parsed",
		"rows":     total,
		"products": products,
	})
}
