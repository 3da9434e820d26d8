package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ledgerpos/ledgerpos/internal/domain/setting"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/persistence/mappers"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/persistence/models"
	"github.com/ledgerpos/ledgerpos/internal/shared/db"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
)

// LocalSettingRepository implements setting.Repository.
type LocalSettingRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewLocalSettingRepository(gdb *gorm.DB, log logger.Interface) setting.Repository {
	return &LocalSettingRepository{db: gdb, logger: log}
}

func (r *LocalSettingRepository) Get(ctx context.Context, key string) (*setting.LocalSetting, error) {
	var model models.LocalSettingModel
	err := db.Conn(ctx, r.db).Where("setting_key = ?", key).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, setting.ErrSettingNotFound
		}
		r.logger.Errorw("failed to get local setting", "key", key, "error", err)
		return nil, fmt.Errorf("failed to get local setting: %w", err)
	}
	return mappers.LocalSettingToDomain(&model), nil
}

func (r *LocalSettingRepository) Upsert(ctx context.Context, s *setting.LocalSetting) error {
	model := mappers.LocalSettingToModel(s)
	err := db.Conn(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to upsert local setting", "key", s.Key(), "error", err)
		return fmt.Errorf("failed to upsert local setting: %w", err)
	}
	return nil
}
