package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ledgerpos/ledgerpos/internal/domain/category"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/persistence/mappers"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/persistence/models"
	"github.com/ledgerpos/ledgerpos/internal/shared/db"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
)

// CategoryRepository implements category.Repository.
type CategoryRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewCategoryRepository(gdb *gorm.DB, log logger.Interface) category.Repository {
	return &CategoryRepository{db: gdb, logger: log}
}

func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) error {
	if err := db.Conn(ctx, r.db).Create(mappers.CategoryToModel(c)).Error; err != nil {
		r.logger.Errorw("failed to create category", "id", c.ID(), "error", err)
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *category.Category) error {
	result := db.Conn(ctx, r.db).
		Model(&models.CategoryModel{}).
		Where("id = ?", c.ID()).
		Updates(map[string]any{
			"name":        c.Name(),
			"description": c.Description(),
			"sort_order":  c.SortOrder(),
			"updated_at":  c.UpdatedAt(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update category", "id", c.ID(), "error", result.Error)
		return fmt.Errorf("failed to update category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return category.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, categoryID string) (*category.Category, error) {
	var model models.CategoryModel
	err := db.Conn(ctx, r.db).Where("id = ?", categoryID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, category.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return mappers.CategoryToDomain(&model), nil
}

func (r *CategoryRepository) ListByBusinessID(ctx context.Context, businessID string) ([]*category.Category, error) {
	var list []*models.CategoryModel
	err := db.Conn(ctx, r.db).
		Where("business_id = ?", businessID).
		Order("sort_order ASC, name ASC").
		Find(&list).Error
	if err != nil {
		r.logger.Errorw("failed to list categories", "business_id", businessID, "error", err)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return mappers.CategoriesToDomain(list), nil
}

func (r *CategoryRepository) ExistsByName(ctx context.Context, businessID, name, excludeID string) (bool, error) {
	var count int64
	q := db.Conn(ctx, r.db).
		Model(&models.CategoryModel{}).
		Where("business_id = ? AND LOWER(name) = LOWER(?)", businessID, name)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check category name: %w", err)
	}
	return count > 0, nil
}
