package middleware

import (
	"net/http"

	"github.com/ismaelallamtaoui/eco-score/pkg/logger"

	jsonres "github.com/ismaelallamtaoui/eco-score/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the echo HTTPErrorHandler: every unhandled error becomes
// a JSON envelope instead of echo's default payload.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	if httpErr, ok := err.(*echo.HTTPError); ok {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("unhandled request error", err, "path", c.Path())
	}

	if err := c.JSON(code, jsonres.Error(http.StatusText(code), message, nil)); err != nil {
		logger.Error("failed to write error response", err)
	}
}
