package auditlog

import (
	"context"
	"time"

	"github.com/ledgerpos/ledgerpos/internal/shared/query"
)

// Filter narrows a list query. Zero values mean "any".
type Filter struct {
	query.PageFilter
	query.SortFilter
	BusinessID string
	EntityType string
	ActorID    string
	From       time.Time
	To         time.Time
}

type Repository interface {
	Create(ctx context.Context, e *Entry) error
	List(ctx context.Context, filter Filter) ([]*Entry, int64, error)
}
