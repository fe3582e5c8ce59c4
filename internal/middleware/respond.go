package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/accountrest/account-service/internal/validation"
)

type BadRequestErrorResponse struct {
	Message string                  `json:"message"`
	Details []validation.FieldError `json:"details"`
}

// RespondWithValidationError writes a 400 with per-field details.
func RespondWithValidationError(c *gin.Context, details []validation.FieldError) {
	c.JSON(http.StatusBadRequest, BadRequestErrorResponse{
		Message: "Invalid account data provided.",
		Details: details,
	})
}

// RespondWithError writes a JSON error body with a human-readable message.
func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"message": message,
	})
}
