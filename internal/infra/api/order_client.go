package api

import (
	"context"
	"net/http"

	"storefront/internal/domain/model"
	"storefront/internal/repository"

	"go.uber.org/zap"
)

const orderPath = "order"

// /v1/order のクライアント
type OrderClient struct {
	client *Client
}

var _ repository.OrderRepository = (*OrderClient)(nil)

// DI
func NewOrderClient(c *Client) *OrderClient {
	return &OrderClient{client: c}
}

// 旧APIは作成した注文を "product" で返す
type orderEnvelope struct {
	Product *model.Order `json:"product"`
	Order   *model.Order `json:"order"`
}

// CreateOrder は POST /v1/order
// 失敗しても再送しない。2xx なら本文が読めなくても作成済みとして扱う。
func (o *OrderClient) CreateOrder(ctx context.Context, order model.Order, idempotencyKey string) (model.Order, error) {
	var header http.Header
	if idempotencyKey != "" {
		header = http.Header{"Idempotency-Key": []string{idempotencyKey}}
	}

	var env orderEnvelope
	if err := o.client.doJSON(ctx, http.MethodPost, orderPath, nil, order, header, &env); err != nil {
		if ae, ok := AsAPIError(err); ok && ae.Status() >= 200 && ae.Status() < 300 {
			o.client.logger.Warn("order created but response body unreadable",
				zap.Int("status", ae.Status()),
				zap.String("idempotency_key", idempotencyKey),
			)
			return model.Order{}, nil
		}
		return model.Order{}, err
	}

	switch {
	case env.Order != nil:
		return *env.Order, nil
	case env.Product != nil:
		return *env.Product, nil
	default:
		return model.Order{}, nil
	}
}

// FetchOrders は GET /v1/order（ダッシュボード用）
func (o *OrderClient) FetchOrders(ctx context.Context, q model.OrderQuery) (model.OrdersResp, error) {
	var resp model.OrdersResp
	v := pageQueryValues(q.SearchWord, q.Page, q.PerPage)
	if err := o.client.doJSON(ctx, http.MethodGet, orderPath, v, nil, nil, &resp); err != nil {
		return model.OrdersResp{}, err
	}
	return resp, nil
}

func (o *OrderClient) Create(ctx context.Context, order model.Order, idempotencyKey string) (model.Order, error) {
	return o.CreateOrder(ctx, order, idempotencyKey)
}

func (o *OrderClient) List(ctx context.Context, q model.OrderQuery) (model.OrdersResp, error) {
	return o.FetchOrders(ctx, q)
}
