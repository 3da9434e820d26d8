package dto

import (
	"time"

	"github.com/ledgerpos/ledgerpos/internal/domain/category"
)

type CategoryDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToCategoryDTO(c *category.Category) *CategoryDTO {
	return &CategoryDTO{
		ID:          c.ID(),
		Name:        c.Name(),
		Description: c.Description(),
		SortOrder:   c.SortOrder(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}

// SyncPayload is the body queued for the backend.
func SyncPayload(c *category.Category) map[string]any {
	return map[string]any{
		"id":          c.ID(),
		"business_id": c.BusinessID(),
		"name":        c.Name(),
		"description": c.Description(),
		"sort_order":  c.SortOrder(),
		"updated_at":  c.UpdatedAt(),
	}
}
