package syncqueue

import "context"

// Repository stores the outbox. Operations the backend refused are kept for
// inspection but leave the pending set, so they never block the queue.
type Repository interface {
	Enqueue(ctx context.Context, op *Operation) error
	// Count returns the number of pending operations.
	Count(ctx context.Context) (int64, error)
	// CountFailed returns the number of operations set aside by MarkFailed.
	CountFailed(ctx context.Context) (int64, error)
	// ListPending returns up to limit pending operations, oldest first.
	ListPending(ctx context.Context, limit int) ([]*Operation, error)
	DeleteByIDs(ctx context.Context, ids []string) error
	// MarkFailed bumps the attempt counter, records the error and moves the
	// operations out of the pending set.
	MarkFailed(ctx context.Context, ids []string, reason string) error
}
