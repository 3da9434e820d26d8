package category

import (
	"context"
	"errors"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrDuplicateName    = errors.New("category name already exists")
)

type Repository interface {
	Create(ctx context.Context, c *Category) error
	Update(ctx context.Context, c *Category) error
	GetByID(ctx context.Context, categoryID string) (*Category, error)
	ListByBusinessID(ctx context.Context, businessID string) ([]*Category, error)
	ExistsByName(ctx context.Context, businessID, name, excludeID string) (bool, error)
}
