// Package category is the product category aggregate. Categories are edited
// locally and pushed to the backend through the sync queue.
package category

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ledgerpos/ledgerpos/internal/shared/biztime"
	"github.com/ledgerpos/ledgerpos/internal/shared/id"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 500
)

type Category struct {
	id          string
	businessID  string
	name        string
	description string
	sortOrder   int
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCategory(businessID, name, description string, sortOrder int) (*Category, error) {
	if businessID == "" {
		return nil, fmt.Errorf("%w: business id is required", ErrInvalidCategory)
	}
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return nil, fmt.Errorf("%w: description exceeds %d characters", ErrInvalidCategory, maxDescriptionLength)
	}

	now := biztime.NowUTC()
	return &Category{
		id:          id.NewCategoryID(),
		businessID:  businessID,
		name:        name,
		description: description,
		sortOrder:   sortOrder,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructCategory rebuilds a category from persistence.
func ReconstructCategory(categoryID, businessID, name, description string, sortOrder int, createdAt, updatedAt time.Time) *Category {
	return &Category{
		id:          categoryID,
		businessID:  businessID,
		name:        name,
		description: description,
		sortOrder:   sortOrder,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (c *Category) ID() string           { return c.id }
func (c *Category) BusinessID() string   { return c.businessID }
func (c *Category) Name() string         { return c.name }
func (c *Category) Description() string  { return c.description }
func (c *Category) SortOrder() int       { return c.sortOrder }
func (c *Category) CreatedAt() time.Time { return c.createdAt }
func (c *Category) UpdatedAt() time.Time { return c.updatedAt }

// Update applies the non-nil fields. It reports whether anything changed.
func (c *Category) Update(name, description *string, sortOrder *int) (bool, error) {
	changed := false
	if name != nil {
		n, err := validateName(*name)
		if err != nil {
			return false, err
		}
		if n != c.name {
			c.name = n
			changed = true
		}
	}
	if description != nil && *description != c.description {
		if utf8.RuneCountInString(*description) > maxDescriptionLength {
			return false, fmt.Errorf("%w: description exceeds %d characters", ErrInvalidCategory, maxDescriptionLength)
		}
		c.description = *description
		changed = true
	}
	if sortOrder != nil && *sortOrder != c.sortOrder {
		c.sortOrder = *sortOrder
		changed = true
	}
	if changed {
		c.updatedAt = biztime.NowUTC()
	}
	return changed, nil
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", ErrInvalidCategory)
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return "", fmt.Errorf("%w: name exceeds %d characters", ErrInvalidCategory, maxNameLength)
	}
	return name, nil
}
