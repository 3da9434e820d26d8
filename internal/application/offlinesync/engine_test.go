package offlinesync

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerpos/ledgerpos/internal/domain/connectivity"
	"github.com/ledgerpos/ledgerpos/internal/domain/syncqueue"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/backend"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
)

type memoryQueue struct {
	mu     sync.Mutex
	ops    []*syncqueue.Operation
	failed map[string]string
}

func newMemoryQueue(t *testing.T, n int) *memoryQueue {
	q := &memoryQueue{failed: map[string]string{}}
	for i := 0; i < n; i++ {
		op, err := syncqueue.NewOperation("category", "cat", syncqueue.ActionUpsert, map[string]int{"i": i})
		require.NoError(t, err)
		q.ops = append(q.ops, op)
	}
	return q
}

func (q *memoryQueue) Enqueue(_ context.Context, op *syncqueue.Operation) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.ops = append(q.ops, op)
	return nil
}

func (q *memoryQueue) Count(context.Context) (int64, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return int64(len(q.ops)), nil
}

func (q *memoryQueue) CountFailed(context.Context) (int64, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return int64(len(q.failed)), nil
}

func (q *memoryQueue) ListPending(_ context.Context, limit int) ([]*syncqueue.Operation, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if limit > len(q.ops) {
		limit = len(q.ops)
	}
	return append([]*syncqueue.Operation(nil), q.ops[:limit]...), nil
}

func (q *memoryQueue) DeleteByIDs(_ context.Context, ids []string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	drop := map[string]bool{}
	for _, id := range ids {
		drop[id] = true
	}
	kept := q.ops[:0]
	for _, op := range q.ops {
		if !drop[op.ID()] {
			kept = append(kept, op)
		}
	}
	q.ops = kept
	return nil
}

func (q *memoryQueue) MarkFailed(ctx context.Context, ids []string, reason string) error {
	q.mu.Lock()
	for _, id := range ids {
		q.failed[id] = reason
	}
	q.mu.Unlock()
	return q.DeleteByIDs(ctx, ids)
}

type pushFunc func(ctx context.Context, businessID string, ops []*syncqueue.Operation) (*backend.PushResult, error)

func (f pushFunc) PushOperations(ctx context.Context, businessID string, ops []*syncqueue.Operation) (*backend.PushResult, error) {
	return f(ctx, businessID, ops)
}

func acceptAll(_ context.Context, _ string, ops []*syncqueue.Operation) (*backend.PushResult, error) {
	res := &backend.PushResult{}
	for _, op := range ops {
		res.Accepted = append(res.Accepted, op.ID())
	}
	return res, nil
}

func newFixture(mode connectivity.Mode, queue *memoryQueue, pusher Pusher, batch int) (*Engine, *connectivity.ModeStore, *connectivity.Store) {
	modes := connectivity.NewModeStore(context.Background(), nil, "connectivity_mode", logger.NewNopLogger())
	_ = modes.SetMode(context.Background(), mode)
	store := connectivity.NewStore(connectivity.InitialState(true, mode))
	engine := NewEngine(queue, pusher, modes, store, "biz_1", batch, logger.NewNopLogger())
	return engine, modes, store
}

func TestEngine_SuccessClearsQueue(t *testing.T) {
	queue := newMemoryQueue(t, 5)
	engine, _, store := newFixture(connectivity.ModeOnline, queue, pushFunc(acceptAll), 2)
	store.SetState(connectivity.Patch{}.WithLastError("previous failure").WithQueueCount(5))

	var statuses []connectivity.Status
	unsubscribe := store.Subscribe(func(s connectivity.State) { statuses = append(statuses, s.Status) })
	defer unsubscribe()

	require.NoError(t, engine.Run(context.Background()))

	state := store.State()
	assert.Equal(t, connectivity.StatusOnlineSynced, state.Status)
	assert.Zero(t, state.QueueCount)
	assert.NotNil(t, state.LastSyncAt)
	assert.Nil(t, state.LastError)
	assert.Contains(t, statuses, connectivity.StatusSyncing)

	n, _ := queue.Count(context.Background())
	assert.Zero(t, n)
	assert.False(t, engine.InProgress())
}

func TestEngine_FailureKeepsQueue(t *testing.T) {
	queue := newMemoryQueue(t, 3)
	failing := pushFunc(func(context.Context, string, []*syncqueue.Operation) (*backend.PushResult, error) {
		return nil, errors.New("backend unavailable")
	})
	engine, _, store := newFixture(connectivity.ModeOnline, queue, failing, 10)

	err := engine.Run(context.Background())
	require.Error(t, err)

	state := store.State()
	assert.Equal(t, connectivity.StatusSyncFailed, state.Status)
	assert.Equal(t, uint(3), state.QueueCount)
	require.NotNil(t, state.LastError)
	assert.Contains(t, *state.LastError, "backend unavailable")
	assert.Nil(t, state.LastSyncAt)
}

func TestEngine_RejectedOperationsAreSetAside(t *testing.T) {
	queue := newMemoryQueue(t, 2)
	rejectFirst := pushFunc(func(_ context.Context, _ string, ops []*syncqueue.Operation) (*backend.PushResult, error) {
		return &backend.PushResult{
			Accepted: []string{ops[1].ID()},
			Rejected: []backend.Rejection{{ID: ops[0].ID(), Reason: "stale version"}},
		}, nil
	})
	engine, _, store := newFixture(connectivity.ModeOnline, queue, rejectFirst, 10)
	rejectedID := queue.ops[0].ID()

	require.NoError(t, engine.Run(context.Background()))

	state := store.State()
	assert.Equal(t, connectivity.StatusSyncFailed, state.Status)
	assert.Zero(t, state.QueueCount)
	require.NotNil(t, state.LastError)
	assert.Contains(t, *state.LastError, "stale version")
	assert.Equal(t, "stale version", queue.failed[rejectedID])
}

func TestEngine_RejectedHeadDoesNotBlockLaterOperations(t *testing.T) {
	queue := newMemoryQueue(t, 3)
	poisoned := map[string]bool{queue.ops[0].ID(): true, queue.ops[1].ID(): true}
	goodID := queue.ops[2].ID()

	var pushed []string
	pusher := pushFunc(func(_ context.Context, _ string, ops []*syncqueue.Operation) (*backend.PushResult, error) {
		res := &backend.PushResult{}
		for _, op := range ops {
			if poisoned[op.ID()] {
				res.Rejected = append(res.Rejected, backend.Rejection{ID: op.ID(), Reason: "invalid payload"})
				continue
			}
			res.Accepted = append(res.Accepted, op.ID())
			pushed = append(pushed, op.ID())
		}
		return res, nil
	})
	engine, _, store := newFixture(connectivity.ModeOnline, queue, pusher, 2)

	require.NoError(t, engine.Run(context.Background()))

	assert.Equal(t, []string{goodID}, pushed)
	state := store.State()
	assert.Equal(t, connectivity.StatusSyncFailed, state.Status)
	assert.Zero(t, state.QueueCount)
	assert.Len(t, queue.failed, 2)

	require.NoError(t, engine.Run(context.Background()))
	state = store.State()
	assert.Equal(t, connectivity.StatusOnlineSynced, state.Status)
	assert.Nil(t, state.LastError)
	assert.Equal(t, []string{goodID}, pushed, "set-aside operations are not retried")
}

func TestEngine_ForcedOfflineDoesNothing(t *testing.T) {
	queue := newMemoryQueue(t, 1)
	called := false
	pusher := pushFunc(func(ctx context.Context, b string, ops []*syncqueue.Operation) (*backend.PushResult, error) {
		called = true
		return acceptAll(ctx, b, ops)
	})
	engine, _, store := newFixture(connectivity.ModeOffline, queue, pusher, 10)
	before := store.State()

	assert.ErrorIs(t, engine.Run(context.Background()), ErrForcedOffline)
	assert.False(t, called)
	assert.True(t, before.Equal(store.State()))
}

func TestEngine_OverlappingRunRejected(t *testing.T) {
	queue := newMemoryQueue(t, 1)
	entered := make(chan struct{})
	release := make(chan struct{})
	blocking := pushFunc(func(ctx context.Context, b string, ops []*syncqueue.Operation) (*backend.PushResult, error) {
		close(entered)
		<-release
		return acceptAll(ctx, b, ops)
	})
	engine, _, _ := newFixture(connectivity.ModeOnline, queue, blocking, 10)

	done := make(chan error, 1)
	go func() { done <- engine.Run(context.Background()) }()
	<-entered

	assert.True(t, engine.InProgress())
	assert.ErrorIs(t, engine.Run(context.Background()), ErrSyncInProgress)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, engine.InProgress())
}

func TestEngine_ModeSwitchDuringSyncWins(t *testing.T) {
	queue := newMemoryQueue(t, 1)
	var engine *Engine
	var modes *connectivity.ModeStore
	var store *connectivity.Store
	switching := pushFunc(func(ctx context.Context, b string, ops []*syncqueue.Operation) (*backend.PushResult, error) {
		require.NoError(t, modes.SetMode(ctx, connectivity.ModeOffline))
		return acceptAll(ctx, b, ops)
	})
	engine, modes, store = newFixture(connectivity.ModeOnline, queue, switching, 10)
	unbind := connectivity.Bind(context.Background(), modes, store, nil)
	defer unbind()

	require.NoError(t, engine.Run(context.Background()))
	assert.Equal(t, connectivity.StatusOfflineForced, store.State().Status)
	assert.NotNil(t, store.State().LastSyncAt)
}

func TestEngine_RefreshQueueCount(t *testing.T) {
	queue := newMemoryQueue(t, 4)
	engine, _, store := newFixture(connectivity.ModeOnline, queue, pushFunc(acceptAll), 10)

	require.NoError(t, engine.RefreshQueueCount(context.Background()))
	assert.Equal(t, uint(4), store.State().QueueCount)
}
