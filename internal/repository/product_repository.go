package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// 商品サービス（/v1/products）への約束
type ProductRepository interface {
	List(ctx context.Context, q model.ProductQuery) (model.ProductsResp, error)
	Create(ctx context.Context, p model.Product) (model.Product, error)
}
