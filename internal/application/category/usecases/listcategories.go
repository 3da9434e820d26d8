package usecases

import (
	"context"
	"fmt"

	"github.com/ledgerpos/ledgerpos/internal/application/category/dto"
	"github.com/ledgerpos/ledgerpos/internal/domain/category"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
	"github.com/ledgerpos/ledgerpos/internal/shared/mapper"
)

type ListCategoriesUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewListCategoriesUseCase(categoryRepo category.Repository, logger logger.Interface) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{categoryRepo: categoryRepo, logger: logger}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context, businessID string) ([]*dto.CategoryDTO, error) {
	categories, err := uc.categoryRepo.ListByBusinessID(ctx, businessID)
	if err != nil {
		uc.logger.Errorw("failed to list categories", "business_id", businessID, "error", err)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	result := mapper.MapSlice(categories, dto.ToCategoryDTO)
	if result == nil {
		result = []*dto.CategoryDTO{}
	}
	return result, nil
}
