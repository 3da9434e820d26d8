// Package planaccess keeps the business's resolved plan access current. The
// backend is the source of truth; the last fetched record is cached locally
// so gates keep working offline.
package planaccess

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ledgerpos/ledgerpos/internal/domain/plan"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
)

type SubscriptionFetcher interface {
	FetchSubscription(ctx context.Context, businessID string) (*plan.Subscription, error)
}

type Service struct {
	fetcher    SubscriptionFetcher
	cache      plan.Repository
	businessID string
	logger     logger.Interface

	mu      sync.RWMutex
	current *plan.Access
}

func NewService(fetcher SubscriptionFetcher, cache plan.Repository, businessID string, logger logger.Interface) *Service {
	return &Service{
		fetcher:    fetcher,
		cache:      cache,
		businessID: businessID,
		logger:     logger,
	}
}

// Access returns the resolved access, loading the cached record on first use.
// It never fails: without any record the business is on basic.
func (s *Service) Access(ctx context.Context) *plan.Access {
	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()
	if current != nil {
		return current
	}

	sub, err := s.cache.GetByBusinessID(ctx, s.businessID)
	if err != nil && !errors.Is(err, plan.ErrNotFound) {
		s.logger.Warnw("failed to load cached subscription", "business_id", s.businessID, "error", err)
	}
	access := plan.Resolve(sub)

	s.mu.Lock()
	if s.current == nil {
		s.current = access
	}
	access = s.current
	s.mu.Unlock()
	return access
}

// Refresh fetches the subscription from the backend, caches it and swaps the
// resolved access. On failure the previous access stays in place.
func (s *Service) Refresh(ctx context.Context) (*plan.Access, error) {
	sub, err := s.fetcher.FetchSubscription(ctx, s.businessID)
	if err != nil {
		if errors.Is(err, plan.ErrNotFound) {
			sub = &plan.Subscription{BusinessID: s.businessID, PlanName: string(plan.NameBasic)}
		} else {
			return s.Access(ctx), fmt.Errorf("failed to fetch subscription: %w", err)
		}
	}

	if err := s.cache.Save(ctx, sub); err != nil {
		s.logger.Warnw("failed to cache subscription", "business_id", s.businessID, "error", err)
	}

	access := plan.Resolve(sub)
	s.mu.Lock()
	s.current = access
	s.mu.Unlock()

	s.logger.Infow("plan access refreshed", "business_id", s.businessID, "plan", access.PlanName())
	return access, nil
}
