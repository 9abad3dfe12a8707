package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"timedpost/internal/shared/errors"
)

// ErrorBody is the wire shape for every error response: a single generic
// message, optionally accompanied by a per-field error map for validation
// failures. Messages are curated; internal detail never appears here.
type ErrorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// ErrorResponse sends an error response with custom status code and message
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Error: message})
}

// InvalidJSONResponse sends the terminal response for an unparsable body.
func InvalidJSONResponse(c *gin.Context) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: "Invalid JSON"})
}

// ValidationErrorResponse sends a 400 with a generic top-level error and the
// per-field message map, keyed by dotted field path.
func ValidationErrorResponse(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: "Invalid input", Fields: fields})
}

// ErrorResponseWithError sends an error response based on error type
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		ErrorResponse(c, appErr.Code, appErr.Message)
		return
	}
	// For non-AppError, do not expose internal error details to prevent information leakage
	ErrorResponse(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
}
