package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutridash/backend/internal/service"
	"github.com/nutridash/backend/internal/validation"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// ErrorHandler recovers panics into a JSON 500 and maps errors attached to
// the gin context onto the right status codes. Validation failures carry
// their field messages so the form layer can place them next to the
// offending controls.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("Error: %v", r)
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var fieldErrs validation.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Fields: fieldErrs})
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		case errors.Is(err, service.ErrEmailTaken):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
		default:
			log.Printf("Error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
		}
	}
}
