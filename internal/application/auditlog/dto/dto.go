package dto

import (
	"time"

	"github.com/ledgerpos/ledgerpos/internal/domain/auditlog"
)

type AuditLogDTO struct {
	ID         string         `json:"id"`
	ActorID    string         `json:"actor_id"`
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	Details    map[string]any `json:"details"`
	CreatedAt  time.Time      `json:"created_at"`
}

func ToAuditLogDTO(e *auditlog.Entry) *AuditLogDTO {
	return &AuditLogDTO{
		ID:         e.ID(),
		ActorID:    e.ActorID(),
		Action:     string(e.Action()),
		EntityType: e.EntityType(),
		EntityID:   e.EntityID(),
		Details:    e.Details(),
		CreatedAt:  e.CreatedAt(),
	}
}
