package usecase

import (
	"context"
	"net/http"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

type OrderUsecase struct {
	orderRepo repo.OrderRepository
}

// DI
func NewOrderUsecase(orderRepo repo.OrderRepository) *OrderUsecase {
	return &OrderUsecase{orderRepo: orderRepo}
}

// ListMyOrders はダッシュボードの注文一覧
// ログイン確認はmiddlewareで行う。
func (u *OrderUsecase) ListMyOrders(ctx context.Context, q model.OrderQuery) (model.OrdersResp, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = defaultPerPage
	}
	if q.PerPage > maxPerPage {
		return model.OrdersResp{}, NewHTTPError(http.StatusBadRequest, "per_page must be 100 or less")
	}

	out, err := u.orderRepo.List(ctx, q)
	if err != nil {
		return model.OrdersResp{}, err
	}
	if out.Orders == nil {
		out.Orders = []model.Order{}
	}
	return out, nil
}
