package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/repository"

	"github.com/sony/gobreaker/v2"
)

const productsPath = "products"

// 商品一覧のブレーカー設定
const (
	breakerFailures = 5
	breakerCooldown = 30 * time.Second
)

// /v1/products のクライアント
type ProductClient struct {
	client  *Client
	breaker *gobreaker.CircuitBreaker[model.ProductsResp]
}

var _ repository.ProductRepository = (*ProductClient)(nil)

// DI
func NewProductClient(c *Client) *ProductClient {
	return &ProductClient{
		client: c,
		breaker: gobreaker.NewCircuitBreaker[model.ProductsResp](gobreaker.Settings{
			Name:        "products",
			MaxRequests: 1,
			Timeout:     breakerCooldown,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= breakerFailures
			},
			// 4xx/5xx はバックエンドが応答しているので数えない
			// 呼び出し側の取り消しもバックエンドの障害ではない。
			IsSuccessful: func(err error) bool {
				if err == nil || errors.Is(err, context.Canceled) {
					return true
				}
				ae, ok := AsAPIError(err)
				return ok && !ae.IsTransport()
			},
		}),
	}
}

// FetchProducts は GET /v1/products
func (p *ProductClient) FetchProducts(ctx context.Context, q model.ProductQuery) (model.ProductsResp, error) {
	out, err := p.breaker.Execute(func() (model.ProductsResp, error) {
		var resp model.ProductsResp
		err := p.client.doJSON(ctx, http.MethodGet, productsPath, pageQueryValues(q.SearchWord, q.Page, q.PerPage), nil, nil, &resp)
		return resp, err
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return model.ProductsResp{}, &APIError{Message: "products: " + err.Error()}
	}
	if err != nil {
		return model.ProductsResp{}, err
	}
	return out, nil
}

// CreateProduct は POST /v1/products
func (p *ProductClient) CreateProduct(ctx context.Context, product model.Product) (model.Product, error) {
	var resp struct {
		Product model.Product `json:"product"`
	}
	if err := p.client.doJSON(ctx, http.MethodPost, productsPath, nil, product, nil, &resp); err != nil {
		return model.Product{}, err
	}
	return resp.Product, nil
}

func (p *ProductClient) List(ctx context.Context, q model.ProductQuery) (model.ProductsResp, error) {
	return p.FetchProducts(ctx, q)
}

func (p *ProductClient) Create(ctx context.Context, product model.Product) (model.Product, error) {
	return p.CreateProduct(ctx, product)
}
