package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// 注文成功後の遷移先
const checkoutRedirect = "/dashboard"

// 入力が空のときに使う連絡先と住所
type CheckoutDefaults struct {
	Contact string
	Address string
}

type CheckoutInput struct {
	Contact string
	Address string
}

type CheckoutResult struct {
	Order      model.Order
	RedirectTo string
}

type CheckoutUsecase struct {
	cart        *CartStore
	orderRepo   repo.OrderRepository
	sessionRepo repo.SessionRepository
	defaults    CheckoutDefaults
	logger      *zap.Logger

	inFlight atomic.Bool
}

// DI
func NewCheckoutUsecase(
	cart *CartStore,
	orderRepo repo.OrderRepository,
	sessionRepo repo.SessionRepository,
	defaults CheckoutDefaults,
	logger *zap.Logger,
) *CheckoutUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutUsecase{
		cart:        cart,
		orderRepo:   orderRepo,
		sessionRepo: sessionRepo,
		defaults:    defaults,
		logger:      logger,
	}
}

// Checkout はカートを1件の注文として送る
// 失敗時はカートを残し、再送はしない。
func (u *CheckoutUsecase) Checkout(ctx context.Context, in CheckoutInput) (CheckoutResult, error) {
	if !u.inFlight.CompareAndSwap(false, true) {
		return CheckoutResult{}, ErrCheckoutInProgress
	}
	defer u.inFlight.Store(false)

	snap := u.cart.Snapshot()
	if snap.IsEmpty() {
		return CheckoutResult{}, ErrCartEmpty
	}

	order := model.Order{
		CustomerID:       u.sessionRepo.CustomerID(ctx),
		Contact:          firstNonEmpty(in.Contact, u.defaults.Contact),
		Address:          firstNonEmpty(in.Address, u.defaults.Address),
		Status:           model.OrderStatusPending,
		ProductOrderList: model.OrderProductsFromCart(snap),
	}

	idemKey := uuid.NewString()
	created, err := u.orderRepo.Create(ctx, order, idemKey)
	if err != nil {
		u.logger.Warn("checkout failed",
			zap.String("idempotency_key", idemKey),
			zap.Int("items", len(order.ProductOrderList)),
			zap.Error(err),
		)
		return CheckoutResult{}, fmt.Errorf("%w: %w", ErrCheckoutFailed, err)
	}

	u.cart.Clear(ctx)
	u.logger.Info("checkout succeeded",
		zap.String("order_id", created.ID),
		zap.String("idempotency_key", idemKey),
	)

	return CheckoutResult{Order: created, RedirectTo: checkoutRedirect}, nil
}

func firstNonEmpty(v string, def string) string {
	if s := strings.TrimSpace(v); s != "" {
		return s
	}
	return def
}
