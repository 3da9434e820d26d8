package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	admindto "github.com/ledgerpos/ledgerpos/internal/application/admin/dto"
	"github.com/ledgerpos/ledgerpos/internal/shared/constants"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
	"github.com/ledgerpos/ledgerpos/internal/shared/utils"
)

// AdminHandler answers admin-only UI questions by asking the hosted admin
// function with the caller's own token.
type AdminHandler struct {
	checker superAdminChecker
	logger  logger.Interface
}

func NewAdminHandler(checker superAdminChecker, logger logger.Interface) *AdminHandler {
	return &AdminHandler{checker: checker, logger: logger}
}

// GetStatus never fails: anything short of a clear yes is a no.
func (h *AdminHandler) GetStatus(c *gin.Context) {
	bearer := c.GetString(constants.ContextKeyBearer)
	isSuperAdmin := bearer != "" && h.checker.CheckSuperAdmin(c.Request.Context(), bearer)
	utils.SuccessResponse(c, http.StatusOK, "", admindto.SuperAdminStatusDTO{IsSuperAdmin: isSuperAdmin})
}
