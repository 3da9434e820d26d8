package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/ledgerpos/ledgerpos/internal/application/category/dto"
	"github.com/ledgerpos/ledgerpos/internal/domain/auditlog"
	"github.com/ledgerpos/ledgerpos/internal/domain/category"
	"github.com/ledgerpos/ledgerpos/internal/domain/syncqueue"
	apperrors "github.com/ledgerpos/ledgerpos/internal/shared/errors"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
)

type UpdateCategoryCommand struct {
	BusinessID  string
	ActorID     string
	CategoryID  string
	Name        *string
	Description *string
	SortOrder   *int
}

type UpdateCategoryUseCase struct {
	categoryRepo category.Repository
	auditRepo    auditlog.Repository
	queue        syncqueue.Repository
	txMgr        TransactionRunner
	refresher    QueueRefresher
	logger       logger.Interface
}

func NewUpdateCategoryUseCase(
	categoryRepo category.Repository,
	auditRepo auditlog.Repository,
	queue syncqueue.Repository,
	txMgr TransactionRunner,
	refresher QueueRefresher,
	logger logger.Interface,
) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
		auditRepo:    auditRepo,
		queue:        queue,
		txMgr:        txMgr,
		refresher:    refresher,
		logger:       logger,
	}
}

// Execute applies the set fields. An update that changes nothing writes
// nothing and queues nothing.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, cmd UpdateCategoryCommand) (*dto.CategoryDTO, error) {
	var (
		result  *category.Category
		changed bool
	)

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		c, err := uc.categoryRepo.GetByID(txCtx, cmd.CategoryID)
		if err != nil {
			return err
		}
		if c.BusinessID() != cmd.BusinessID {
			return category.ErrCategoryNotFound
		}

		changed, err = c.Update(cmd.Name, cmd.Description, cmd.SortOrder)
		if err != nil {
			return err
		}
		result = c
		if !changed {
			return nil
		}

		exists, err := uc.categoryRepo.ExistsByName(txCtx, c.BusinessID(), c.Name(), c.ID())
		if err != nil {
			return fmt.Errorf("failed to check category name: %w", err)
		}
		if exists {
			return category.ErrDuplicateName
		}

		if err := uc.categoryRepo.Update(txCtx, c); err != nil {
			return fmt.Errorf("failed to update category: %w", err)
		}

		entry := auditlog.NewEntry(c.BusinessID(), cmd.ActorID, auditlog.ActionUpdate, entityTypeCategory, c.ID(), changedFields(cmd))
		if err := uc.auditRepo.Create(txCtx, entry); err != nil {
			return fmt.Errorf("failed to record audit entry: %w", err)
		}

		op, err := syncqueue.NewOperation(entityTypeCategory, c.ID(), syncqueue.ActionUpsert, dto.SyncPayload(c))
		if err != nil {
			return err
		}
		if err := uc.queue.Enqueue(txCtx, op); err != nil {
			return fmt.Errorf("failed to enqueue sync operation: %w", err)
		}
		return nil
	})
	if txErr != nil {
		switch {
		case errors.Is(txErr, category.ErrCategoryNotFound):
			return nil, apperrors.NewNotFoundError("category not found")
		case errors.Is(txErr, category.ErrInvalidCategory):
			return nil, apperrors.NewValidationError(txErr.Error())
		case errors.Is(txErr, category.ErrDuplicateName):
			return nil, apperrors.NewConflictError("a category with this name already exists")
		}
		uc.logger.Errorw("failed to update category", "category_id", cmd.CategoryID, "error", txErr)
		return nil, txErr
	}

	if changed {
		if err := uc.refresher.RefreshQueueCount(ctx); err != nil {
			uc.logger.Warnw("failed to refresh sync queue count", "error", err)
		}
		uc.logger.Infow("category updated", "category_id", result.ID())
	}
	return dto.ToCategoryDTO(result), nil
}

func changedFields(cmd UpdateCategoryCommand) map[string]any {
	fields := map[string]any{}
	if cmd.Name != nil {
		fields["name"] = *cmd.Name
	}
	if cmd.Description != nil {
		fields["description"] = *cmd.Description
	}
	if cmd.SortOrder != nil {
		fields["sort_order"] = *cmd.SortOrder
	}
	return fields
}
