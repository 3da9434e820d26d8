package plan

import (
	"context"
	"time"
)

// Subscription is the business's plan record as fetched from the backend.
// PlanName is kept raw; Resolve normalizes it.
type Subscription struct {
	BusinessID string
	PlanName   string
	Features   []string
	Limits     Limits
	UpdatedAt  time.Time
}

// Repository is the local cache of the subscription record.
type Repository interface {
	// GetByBusinessID returns ErrNotFound when no record is cached.
	GetByBusinessID(ctx context.Context, businessID string) (*Subscription, error)
	Save(ctx context.Context, sub *Subscription) error
}
