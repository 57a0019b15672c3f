package repository

import (
	"context"
	"errors"

	"vendora/internal/domain/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartStoreGorm struct {
	db *gorm.DB
}

// DI
func NewCartStoreGorm(db *gorm.DB) *CartStoreGorm {
	return &CartStoreGorm{db: db}
}

// セッションのカートJSONを取得。無ければ found=false。
func (s *CartStoreGorm) Get(ctx context.Context, sessionKey string) (string, bool, error) {
	var rec model.CartRecord

	err := s.db.WithContext(ctx).
		Where("session_key = ?", sessionKey).
		First(&rec).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return rec.Items, true, nil
}

// セッションのカートJSONを保存（upsert）。
func (s *CartStoreGorm) Put(ctx context.Context, sessionKey string, raw string) error {
	rec := model.CartRecord{
		SessionKey: sessionKey,
		Items:      raw,
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"items", "updated_at"}),
		}).
		Create(&rec).Error
}
