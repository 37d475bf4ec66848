package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	defaultPerPage = 12
	maxPerPage     = 100
	maxSearchRunes = 100
)

type ProductUsecase struct {
	productRepo repo.ProductRepository
	cache       *expirable.LRU[model.ProductQuery, model.ProductsResp]
	logger      *zap.Logger
}

// DI
// cacheSize が0以下ならキャッシュしない。cacheTTL を過ぎた一覧はバックエンドから取り直す。
func NewProductUsecase(productRepo repo.ProductRepository, cacheSize int, cacheTTL time.Duration, logger *zap.Logger) *ProductUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	u := &ProductUsecase{productRepo: productRepo, logger: logger}
	if cacheSize > 0 {
		u.cache = expirable.NewLRU[model.ProductQuery, model.ProductsResp](cacheSize, nil, cacheTTL)
	}
	return u
}

// Browse は商品一覧（同じ条件は有効期限内ならキャッシュから返す）
func (u *ProductUsecase) Browse(ctx context.Context, q model.ProductQuery) (model.ProductsResp, error) {
	q.SearchWord = strings.TrimSpace(q.SearchWord)
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = defaultPerPage
	}
	if q.PerPage > maxPerPage {
		return model.ProductsResp{}, NewHTTPError(http.StatusBadRequest, "per_page must be 100 or less")
	}
	if utf8.RuneCountInString(q.SearchWord) > maxSearchRunes {
		return model.ProductsResp{}, NewHTTPError(http.StatusBadRequest, "search_word is too long")
	}

	if u.cache != nil {
		if v, ok := u.cache.Get(q); ok {
			return v, nil
		}
	}

	out, err := u.productRepo.List(ctx, q)
	if err != nil {
		return model.ProductsResp{}, err
	}
	if out.Products == nil {
		out.Products = []model.Product{}
	}

	if u.cache != nil {
		u.cache.Add(q, out)
	}
	return out, nil
}

// 管理画面の商品作成
type AdminCreateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryIDs []string
}

// AdminCreate は商品を作成して一覧キャッシュを捨てる
func (u *ProductUsecase) AdminCreate(ctx context.Context, in AdminCreateProductInput) (model.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if in.Price.IsNegative() {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "price must be 0 or more")
	}

	cats := make([]model.Category, 0, len(in.CategoryIDs))
	for _, id := range in.CategoryIDs {
		cats = append(cats, model.Category{ID: id})
	}

	created, err := u.productRepo.Create(ctx, model.Product{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Price:       model.NewPrice(in.Price),
		Categories:  cats,
	})
	if err != nil {
		return model.Product{}, err
	}

	if u.cache != nil {
		u.cache.Purge()
	}
	u.logger.Info("product created", zap.String("product_id", created.ID))
	return created, nil
}
