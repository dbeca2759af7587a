package middleware

import (
	"net/http"
	"quickBite/pkg/logger"

	jsonres "quickBite/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler converts any error that escapes a handler into a JSON
// envelope. Nothing is ever fatal to the process.
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
		logger.Error("Unhandled request error", err)
	}

	if writeErr := c.JSON(code, jsonres.Error(http.StatusText(code), message, nil)); writeErr != nil {
		logger.Error("Failed to write error response", writeErr)
	}
}
