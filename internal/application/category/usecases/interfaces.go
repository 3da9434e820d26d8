package usecases

import "context"

// QueueRefresher republishes the sync queue length after an enqueue.
type QueueRefresher interface {
	RefreshQueueCount(ctx context.Context) error
}

// TransactionRunner runs fn in one database transaction.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
