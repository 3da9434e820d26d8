package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ledgerpos/ledgerpos/internal/application/auditlog/usecases"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
	"github.com/ledgerpos/ledgerpos/internal/shared/utils"
)

type AuditLogHandler struct {
	listUC     listAuditLogsUseCase
	businessID string
	logger     logger.Interface
}

func NewAuditLogHandler(listUC listAuditLogsUseCase, businessID string, logger logger.Interface) *AuditLogHandler {
	return &AuditLogHandler{listUC: listUC, businessID: businessID, logger: logger}
}

// ListAuditLogs handles GET /audit-logs?entity_type=&actor_id=&from=&to=&page=&page_size=
func (h *AuditLogHandler) ListAuditLogs(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListAuditLogsQuery{
		BusinessID: h.businessID,
		EntityType: c.Query("entity_type"),
		ActorID:    c.Query("actor_id"),
		From:       c.Query("from"),
		To:         c.Query("to"),
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.Size)
}
