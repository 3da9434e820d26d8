package profile

import (
	"context"
	"errors"
)

var ErrProfileNotFound = errors.New("profile not found")

type Repository interface {
	GetByUsernameLower(ctx context.Context, usernameLower string) (*Profile, error)
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
}
