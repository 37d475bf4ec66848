package model

import "time"

// 永続スロット（postgresドライバ用）
type DurableSlot struct {
	Key       string    `gorm:"primaryKey;type:varchar(255)"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime"`
}

func (DurableSlot) TableName() string {
	return "durable_slots"
}
