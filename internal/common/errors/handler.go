package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Logger is the subset of logger.Logger the handler needs.
type Logger interface {
	Error(msg string, fields map[string]interface{})
}

// ErrorHandler turns errors into JSON responses.
type ErrorHandler struct {
	logger Logger
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// HandleRequestError normalises err, logs it and aborts the request.
func (h *ErrorHandler) HandleRequestError(c *gin.Context, err error) {
	stdErr := Normalize(err)
	status := HTTPStatus(stdErr.Code)

	h.logger.Error("request failed", map[string]interface{}{
		"path":          c.FullPath(),
		"method":        c.Request.Method,
		"status":        status,
		"errorCode":     string(stdErr.Code),
		"message":       stdErr.Message,
		"details":       stdErr.Details,
		"retryable":     stdErr.Retryable,
		"errorCategory": GetErrorCategory(stdErr.Code),
	})

	c.AbortWithStatusJSON(status, gin.H{"error": stdErr})
}

// HTTPStatus maps an error code to a response status.
func HTTPStatus(code ErrorCode) int {
	switch GetErrorCategory(code) {
	case "VALIDATION":
		return http.StatusUnprocessableEntity
	case "STATE":
		return http.StatusConflict
	case "SESSION":
		return http.StatusNotFound
	case "REQUEST":
		return http.StatusBadRequest
	case "IDENTIFIER":
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
