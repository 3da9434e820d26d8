package session

import (
	"context"
	"errors"
)

var ErrSessionNotFound = errors.New("session not found")

type Repository interface {
	Create(ctx context.Context, s *Session) error
	GetByID(ctx context.Context, sessionID string) (*Session, error)
	ListActiveByUserID(ctx context.Context, userID string) ([]*Session, error)
	Update(ctx context.Context, s *Session) error
	// RevokeAllByUserID revokes every active session of userID except
	// exceptID, which may be empty. It returns the number revoked.
	RevokeAllByUserID(ctx context.Context, userID, exceptID string) (int64, error)
}
