package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// カート全体の保存・復元を約束
// 無い/壊れているは空カートで返す。
type CartRepository interface {
	Load(ctx context.Context) (model.CartState, error)
	Save(ctx context.Context, state model.CartState) error
}
