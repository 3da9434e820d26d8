package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ledgerpos/ledgerpos/internal/domain/profile"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/persistence/mappers"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/persistence/models"
	"github.com/ledgerpos/ledgerpos/internal/shared/db"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
)

// ProfileRepository implements profile.Repository.
type ProfileRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewProfileRepository(gdb *gorm.DB, log logger.Interface) profile.Repository {
	return &ProfileRepository{db: gdb, logger: log}
}

func (r *ProfileRepository) GetByUsernameLower(ctx context.Context, usernameLower string) (*profile.Profile, error) {
	var model models.ProfileModel
	err := db.Conn(ctx, r.db).Where("username_lower = ?", usernameLower).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, profile.ErrProfileNotFound
		}
		r.logger.Errorw("failed to get profile by username", "error", err)
		return nil, fmt.Errorf("failed to get profile by username: %w", err)
	}
	return mappers.ProfileToDomain(&model), nil
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*profile.Profile, error) {
	var model models.ProfileModel
	err := db.Conn(ctx, r.db).Where("user_id = ?", userID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, profile.ErrProfileNotFound
		}
		r.logger.Errorw("failed to get profile by user id", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get profile by user id: %w", err)
	}
	return mappers.ProfileToDomain(&model), nil
}
