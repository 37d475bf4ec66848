package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// 注文サービス（/v1/order）への約束
type OrderRepository interface {
	Create(ctx context.Context, order model.Order, idempotencyKey string) (model.Order, error)
	List(ctx context.Context, q model.OrderQuery) (model.OrdersResp, error)
}
