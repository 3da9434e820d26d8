package mappers

import (
	"github.com/ledgerpos/ledgerpos/internal/domain/category"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/persistence/models"
	"github.com/ledgerpos/ledgerpos/internal/shared/mapper"
)

func CategoryToDomain(m *models.CategoryModel) *category.Category {
	if m == nil {
		return nil
	}
	return category.ReconstructCategory(
		m.ID,
		m.BusinessID,
		m.Name,
		m.Description,
		m.SortOrder,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

func CategoryToModel(c *category.Category) *models.CategoryModel {
	if c == nil {
		return nil
	}
	return &models.CategoryModel{
		ID:          c.ID(),
		BusinessID:  c.BusinessID(),
		Name:        c.Name(),
		Description: c.Description(),
		SortOrder:   c.SortOrder(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}

func CategoriesToDomain(list []*models.CategoryModel) []*category.Category {
	return mapper.MapSlicePtr(list, CategoryToDomain)
}
