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

const entityTypeCategory = "category"

type CreateCategoryCommand struct {
	BusinessID  string
	ActorID     string
	Name        string
	Description string
	SortOrder   int
}

// CreateCategoryUseCase writes the category, its audit entry and the queued
// sync operation in one transaction.
type CreateCategoryUseCase struct {
	categoryRepo category.Repository
	auditRepo    auditlog.Repository
	queue        syncqueue.Repository
	txMgr        TransactionRunner
	refresher    QueueRefresher
	logger       logger.Interface
}

func NewCreateCategoryUseCase(
	categoryRepo category.Repository,
	auditRepo auditlog.Repository,
	queue syncqueue.Repository,
	txMgr TransactionRunner,
	refresher QueueRefresher,
	logger logger.Interface,
) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
		auditRepo:    auditRepo,
		queue:        queue,
		txMgr:        txMgr,
		refresher:    refresher,
		logger:       logger,
	}
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, cmd CreateCategoryCommand) (*dto.CategoryDTO, error) {
	c, err := category.NewCategory(cmd.BusinessID, cmd.Name, cmd.Description, cmd.SortOrder)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		exists, err := uc.categoryRepo.ExistsByName(txCtx, c.BusinessID(), c.Name(), "")
		if err != nil {
			return fmt.Errorf("failed to check category name: %w", err)
		}
		if exists {
			return category.ErrDuplicateName
		}

		if err := uc.categoryRepo.Create(txCtx, c); err != nil {
			return fmt.Errorf("failed to create category: %w", err)
		}

		entry := auditlog.NewEntry(c.BusinessID(), cmd.ActorID, auditlog.ActionCreate, entityTypeCategory, c.ID(), map[string]any{
			"name": c.Name(),
		})
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
		if errors.Is(txErr, category.ErrDuplicateName) {
			return nil, apperrors.NewConflictError("a category with this name already exists")
		}
		uc.logger.Errorw("failed to create category", "business_id", cmd.BusinessID, "error", txErr)
		return nil, txErr
	}

	if err := uc.refresher.RefreshQueueCount(ctx); err != nil {
		uc.logger.Warnw("failed to refresh sync queue count", "error", err)
	}

	uc.logger.Infow("category created", "category_id", c.ID(), "business_id", c.BusinessID())
	return dto.ToCategoryDTO(c), nil
}
