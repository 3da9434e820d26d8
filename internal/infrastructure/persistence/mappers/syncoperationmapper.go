package mappers

import (
	"gorm.io/datatypes"

	"github.com/ledgerpos/ledgerpos/internal/domain/syncqueue"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/persistence/models"
	"github.com/ledgerpos/ledgerpos/internal/shared/mapper"
)

func SyncOperationToDomain(m *models.SyncOperationModel) *syncqueue.Operation {
	if m == nil {
		return nil
	}
	return syncqueue.ReconstructOperation(
		m.ID,
		m.EntityType,
		m.EntityID,
		syncqueue.Action(m.Action),
		[]byte(m.Payload),
		m.Attempts,
		m.LastError,
		m.CreatedAt,
	)
}

func SyncOperationToModel(op *syncqueue.Operation) *models.SyncOperationModel {
	if op == nil {
		return nil
	}
	return &models.SyncOperationModel{
		ID:         op.ID(),
		EntityType: op.EntityType(),
		EntityID:   op.EntityID(),
		Action:     string(op.Action()),
		Payload:    datatypes.JSON(op.Payload()),
		Attempts:   op.Attempts(),
		LastError:  op.LastError(),
		CreatedAt:  op.CreatedAt(),
	}
}

func SyncOperationsToDomain(list []*models.SyncOperationModel) []*syncqueue.Operation {
	return mapper.MapSlicePtr(list, SyncOperationToDomain)
}
