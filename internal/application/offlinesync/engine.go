// Package offlinesync drains the local operation queue to the backend and
// reflects progress in the connectivity store.
package offlinesync

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/ledgerpos/ledgerpos/internal/domain/connectivity"
	"github.com/ledgerpos/ledgerpos/internal/domain/syncqueue"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/backend"
	"github.com/ledgerpos/ledgerpos/internal/shared/biztime"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
)

var (
	ErrSyncInProgress = errors.New("sync already in progress")
	ErrForcedOffline  = errors.New("offline mode is on")
)

const defaultBatchSize = 100

// Pusher delivers queued operations to the backend.
type Pusher interface {
	PushOperations(ctx context.Context, businessID string, ops []*syncqueue.Operation) (*backend.PushResult, error)
}

// Engine runs at most one sync at a time. Overlapping calls fail with
// ErrSyncInProgress instead of waiting.
type Engine struct {
	queue      syncqueue.Repository
	pusher     Pusher
	modes      *connectivity.ModeStore
	store      *connectivity.Store
	businessID string
	batchSize  int
	logger     logger.Interface

	running atomic.Bool
}

func NewEngine(
	queue syncqueue.Repository,
	pusher Pusher,
	modes *connectivity.ModeStore,
	store *connectivity.Store,
	businessID string,
	batchSize int,
	logger logger.Interface,
) *Engine {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Engine{
		queue:      queue,
		pusher:     pusher,
		modes:      modes,
		store:      store,
		businessID: businessID,
		batchSize:  batchSize,
		logger:     logger,
	}
}

// InProgress reports whether a sync is running.
func (e *Engine) InProgress() bool {
	return e.running.Load()
}

// Run pushes pending operations oldest first until the queue is empty or a
// batch makes no progress. Operations the backend rejects are set aside, so a
// poisoned head never stops later operations from syncing.
func (e *Engine) Run(ctx context.Context) error {
	if e.modes.State() == connectivity.ModeOffline {
		return ErrForcedOffline
	}
	if !e.running.CompareAndSwap(false, true) {
		return ErrSyncInProgress
	}
	defer e.running.Store(false)

	e.store.SetState(connectivity.Patch{}.WithStatus(connectivity.StatusSyncing))
	e.logger.Debugw("sync started", "business_id", e.businessID)

	pushed, rejections, err := e.drain(ctx)
	if err != nil {
		e.fail(ctx, err.Error())
		e.logger.Warnw("sync failed", "error", err, "pushed", pushed)
		return err
	}
	if len(rejections) > 0 {
		e.fail(ctx, "rejected: "+strings.Join(rejections, "; "))
		e.logger.Warnw("sync finished with rejected operations",
			"pushed", pushed,
			"rejected", len(rejections),
			"failed_total", e.countFailed(ctx),
		)
		return nil
	}

	e.succeed(ctx)
	e.logger.Infow("sync completed", "pushed", pushed)
	return nil
}

func (e *Engine) drain(ctx context.Context) (int, []string, error) {
	var (
		pushed     int
		rejections []string
	)

	for {
		ops, err := e.queue.ListPending(ctx, e.batchSize)
		if err != nil {
			return pushed, rejections, fmt.Errorf("failed to list pending operations: %w", err)
		}
		if len(ops) == 0 {
			return pushed, rejections, nil
		}

		result, err := e.pusher.PushOperations(ctx, e.businessID, ops)
		if err != nil {
			return pushed, rejections, fmt.Errorf("failed to push operations: %w", err)
		}

		if len(result.Accepted) > 0 {
			if err := e.queue.DeleteByIDs(ctx, result.Accepted); err != nil {
				return pushed, rejections, fmt.Errorf("failed to remove pushed operations: %w", err)
			}
			pushed += len(result.Accepted)
		}

		for _, r := range result.Rejected {
			if err := e.queue.MarkFailed(ctx, []string{r.ID}, r.Reason); err != nil {
				return pushed, rejections, fmt.Errorf("failed to mark rejected operation: %w", err)
			}
			rejections = append(rejections, r.Reason)
		}

		if len(result.Accepted)+len(result.Rejected) == 0 || len(ops) < e.batchSize {
			return pushed, rejections, nil
		}
	}
}

func (e *Engine) succeed(ctx context.Context) {
	count := e.countQueue(ctx)
	now := biztime.NowUTC()

	e.store.Update(func(current connectivity.State) connectivity.Patch {
		p := connectivity.Patch{ClearLastError: true}.
			WithLastSyncAt(now)
		if count != nil {
			p = p.WithQueueCount(*count)
		}
		// A mode switch during the sync already moved the status on.
		if current.Status == connectivity.StatusSyncing {
			p = p.WithStatus(connectivity.StatusOnlineSynced)
		}
		return p
	})
}

func (e *Engine) fail(ctx context.Context, reason string) {
	count := e.countQueue(ctx)

	e.store.Update(func(current connectivity.State) connectivity.Patch {
		p := connectivity.Patch{}.WithLastError(reason)
		if count != nil {
			p = p.WithQueueCount(*count)
		}
		if current.Status == connectivity.StatusSyncing {
			p = p.WithStatus(connectivity.StatusSyncFailed)
		}
		return p
	})
}

// RefreshQueueCount publishes the current queue length.
func (e *Engine) RefreshQueueCount(ctx context.Context) error {
	n, err := e.queue.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count queued operations: %w", err)
	}
	e.store.SetState(connectivity.Patch{}.WithQueueCount(uint(n)))
	return nil
}

func (e *Engine) countFailed(ctx context.Context) int64 {
	n, err := e.queue.CountFailed(ctx)
	if err != nil {
		e.logger.Warnw("failed to count rejected operations", "error", err)
		return -1
	}
	return n
}

func (e *Engine) countQueue(ctx context.Context) *uint {
	n, err := e.queue.Count(ctx)
	if err != nil {
		e.logger.Warnw("failed to count queued operations", "error", err)
		return nil
	}
	c := uint(n)
	return &c
}
