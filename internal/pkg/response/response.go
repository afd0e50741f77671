// ================== internal/pkg/response/response.go ==================
package response

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/mobidrive/carapi/pkg/errors"
)

// ErrorBody is the wire shape of every failure. Status carries the
// HTTP status name (e.g. "NOT_FOUND"), not the numeric code.
type ErrorBody struct {
	Message string `json:"message" example:"Unauthorized"`
	Status  string `json:"status" example:"UNAUTHORIZED"`
}

// StatusName renders a status code the way the API spells it,
// "Not Found" -> "NOT_FOUND".
func StatusName(code int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(code), " ", "_"))
}

// Error writes the structured error body and aborts the request so no
// later handler runs.
func Error(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, ErrorBody{
		Message: message,
		Status:  StatusName(statusCode),
	})
}

// Unauthorized sends a 401 error.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// NotFound sends a 404 error.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// BadRequest sends a 400 error.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// FromError maps a service error onto the wire by kind. Anything
// unclassified answers 401 rather than leaking internals.
func FromError(c *gin.Context, err error) {
	switch apperrors.KindOf(err) {
	case apperrors.KindNotFound:
		NotFound(c, err.Error())
	case apperrors.KindBadRequest:
		BadRequest(c, err.Error())
	default:
		Unauthorized(c, err.Error())
	}
}
