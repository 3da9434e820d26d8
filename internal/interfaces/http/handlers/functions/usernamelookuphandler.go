package functions

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ledgerpos/ledgerpos/internal/application/account/usecases"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
)

type lookupUsernameUseCase interface {
	Execute(ctx context.Context, query usecases.LookupUsernameQuery) (*usecases.LookupUsernameResult, error)
}

type UsernameLookupHandler struct {
	lookupUC   lookupUsernameUseCase
	configured bool
	logger     logger.Interface
}

// NewUsernameLookupHandler builds the handler. configured is false when the
// host lacks the credentials it needs to read profiles; every request then
// fails with a generic 500.
func NewUsernameLookupHandler(lookupUC lookupUsernameUseCase, configured bool, logger logger.Interface) *UsernameLookupHandler {
	return &UsernameLookupHandler{lookupUC: lookupUC, configured: configured, logger: logger}
}

type usernameLookupRequest struct {
	Username *string `json:"username"`
}

// Lookup handles POST /functions/v1/username-lookup.
func (h *UsernameLookupHandler) Lookup(c *gin.Context) {
	if !h.configured {
		h.logger.Errorw("username lookup called without service credentials")
		respondError(c, http.StatusInternalServerError, "Server configuration error")
		return
	}

	var req usernameLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == nil {
		respondError(c, http.StatusBadRequest, "Username is required")
		return
	}

	result, err := h.lookupUC.Execute(c.Request.Context(), usecases.LookupUsernameQuery{Username: *req.Username})
	if err != nil {
		respondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
