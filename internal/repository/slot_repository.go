package repository

import (
	"context"
	"errors"
)

// スロットに値が無い
var ErrSlotNotFound = errors.New("slot not found")

// 端末側の永続スロット（key/value）
// nil は「保存先が無い」を表す。
type SlotRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
}
