package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ledgerpos/ledgerpos/internal/domain/session"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/persistence/mappers"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/persistence/models"
	"github.com/ledgerpos/ledgerpos/internal/shared/biztime"
	"github.com/ledgerpos/ledgerpos/internal/shared/db"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
)

// SessionRepository implements session.Repository.
type SessionRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSessionRepository(gdb *gorm.DB, log logger.Interface) session.Repository {
	return &SessionRepository{db: gdb, logger: log}
}

func (r *SessionRepository) Create(ctx context.Context, s *session.Session) error {
	if err := db.Conn(ctx, r.db).Create(mappers.SessionToModel(s)).Error; err != nil {
		r.logger.Errorw("failed to create session", "user_id", s.UserID(), "error", err)
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, sessionID string) (*session.Session, error) {
	var model models.SessionModel
	err := db.Conn(ctx, r.db).Where("id = ?", sessionID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, session.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session by id: %w", err)
	}
	return mappers.SessionToDomain(&model), nil
}

func (r *SessionRepository) ListActiveByUserID(ctx context.Context, userID string) ([]*session.Session, error) {
	var list []*models.SessionModel
	err := db.Conn(ctx, r.db).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Order("last_seen_at DESC").
		Find(&list).Error
	if err != nil {
		r.logger.Errorw("failed to list sessions", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return mappers.SessionsToDomain(list), nil
}

func (r *SessionRepository) Update(ctx context.Context, s *session.Session) error {
	result := db.Conn(ctx, r.db).
		Model(&models.SessionModel{}).
		Where("id = ?", s.ID()).
		Updates(map[string]any{
			"last_seen_at": s.LastSeenAt(),
			"revoked_at":   s.RevokedAt(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return session.ErrSessionNotFound
	}
	return nil
}

func (r *SessionRepository) RevokeAllByUserID(ctx context.Context, userID, exceptID string) (int64, error) {
	q := db.Conn(ctx, r.db).
		Model(&models.SessionModel{}).
		Where("user_id = ? AND revoked_at IS NULL", userID)
	if exceptID != "" {
		q = q.Where("id <> ?", exceptID)
	}
	result := q.Update("revoked_at", biztime.NowUTC())
	if result.Error != nil {
		r.logger.Errorw("failed to revoke sessions", "user_id", userID, "error", result.Error)
		return 0, fmt.Errorf("failed to revoke sessions: %w", result.Error)
	}
	return result.RowsAffected, nil
}
