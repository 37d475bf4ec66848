package repository

import (
	"context"
	"errors"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// durable_slots テーブルに保存するスロット
type GormSlotRepository struct {
	db *gorm.DB
}

var _ repo.SlotRepository = (*GormSlotRepository)(nil)

// DI
func NewGormSlotRepository(db *gorm.DB) *GormSlotRepository {
	return &GormSlotRepository{db: db}
}

// keyの値を取得
func (r *GormSlotRepository) Get(ctx context.Context, key string) (string, error) {
	var slot model.DurableSlot

	err := r.db.WithContext(ctx).
		Where("key = ?", key).
		First(&slot).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", repo.ErrSlotNotFound
	}
	if err != nil {
		return "", err
	}
	return slot.Value, nil
}

// 無ければ作成、あれば上書き
func (r *GormSlotRepository) Set(ctx context.Context, key string, value string) error {
	slot := model.DurableSlot{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&slot).Error
}

// 削除（無くてもエラーにしない）
func (r *GormSlotRepository) Remove(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).
		Where("key = ?", key).
		Delete(&model.DurableSlot{}).Error
}
