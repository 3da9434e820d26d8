// Package functions implements the hosted serverless functions. Their bodies
// are plain JSON objects, not the agent's response envelope.
package functions

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/ledgerpos/ledgerpos/internal/shared/errors"
)

const msgInternalError = "Internal server error"

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// respondAppError exposes AppError messages and hides everything else behind
// a generic 500.
func respondAppError(c *gin.Context, err error) {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		respondError(c, appErr.Code, appErr.Message)
		return
	}
	respondError(c, http.StatusInternalServerError, msgInternalError)
}
