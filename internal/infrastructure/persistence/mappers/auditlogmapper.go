package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/ledgerpos/ledgerpos/internal/domain/auditlog"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/persistence/models"
)

// AuditLogToDomain maps a stored entry. Unreadable details become an empty
// map rather than failing the whole list.
func AuditLogToDomain(m *models.AuditLogModel) *auditlog.Entry {
	if m == nil {
		return nil
	}
	details := map[string]any{}
	if len(m.Details) > 0 {
		if err := json.Unmarshal(m.Details, &details); err != nil || details == nil {
			details = map[string]any{}
		}
	}
	return auditlog.ReconstructEntry(
		m.ID,
		m.BusinessID,
		m.ActorID,
		auditlog.Action(m.Action),
		m.EntityType,
		m.EntityID,
		details,
		m.CreatedAt,
	)
}

func AuditLogToModel(e *auditlog.Entry) (*models.AuditLogModel, error) {
	if e == nil {
		return nil, nil
	}
	raw, err := json.Marshal(e.Details())
	if err != nil {
		return nil, fmt.Errorf("failed to encode audit details: %w", err)
	}
	return &models.AuditLogModel{
		ID:         e.ID(),
		BusinessID: e.BusinessID(),
		ActorID:    e.ActorID(),
		Action:     string(e.Action()),
		EntityType: e.EntityType(),
		EntityID:   e.EntityID(),
		Details:    datatypes.JSON(raw),
		CreatedAt:  e.CreatedAt(),
	}, nil
}
