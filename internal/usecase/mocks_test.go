package usecase_test

import (
	"context"
	"sync"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// Repository mocks
// =====================

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Load(ctx context.Context) (model.CartState, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(model.CartState)
	return s, args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, state model.CartState) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

var _ repo.CartRepository = (*MockCartRepository)(nil)

// memCartRepo は保存内容を確認するための実装
type memCartRepo struct {
	mu    sync.Mutex
	state model.CartState
	saves int
}

func (r *memCartRepo) Load(ctx context.Context) (model.CartState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.Clone(), nil
}

func (r *memCartRepo) Save(ctx context.Context, state model.CartState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = state.Clone()
	r.saves++
	return nil
}

func (r *memCartRepo) saved() model.CartState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.Clone()
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order model.Order, idempotencyKey string) (model.Order, error) {
	args := m.Called(ctx, order, idempotencyKey)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, q model.OrderQuery) (model.OrdersResp, error) {
	args := m.Called(ctx, q)
	o, _ := args.Get(0).(model.OrdersResp)
	return o, args.Error(1)
}

var _ repo.OrderRepository = (*MockOrderRepository)(nil)

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Save(ctx context.Context, passport model.UserPassport) error {
	args := m.Called(ctx, passport)
	return args.Error(0)
}

func (m *MockSessionRepository) Load(ctx context.Context) (model.Session, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(model.Session)
	return s, args.Error(1)
}

func (m *MockSessionRepository) CustomerID(ctx context.Context) string {
	args := m.Called(ctx)
	return args.String(0)
}

func (m *MockSessionRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ repo.SessionRepository = (*MockSessionRepository)(nil)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context, q model.ProductQuery) (model.ProductsResp, error) {
	args := m.Called(ctx, q)
	p, _ := args.Get(0).(model.ProductsResp)
	return p, args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	out, _ := args.Get(0).(model.Product)
	return out, args.Error(1)
}

var _ repo.ProductRepository = (*MockProductRepository)(nil)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SignIn(ctx context.Context, c model.Credentials) (model.UserPassport, error) {
	args := m.Called(ctx, c)
	p, _ := args.Get(0).(model.UserPassport)
	return p, args.Error(1)
}

func (m *MockUserRepository) SignUp(ctx context.Context, s model.SignUp) (model.UserPassport, error) {
	args := m.Called(ctx, s)
	p, _ := args.Get(0).(model.UserPassport)
	return p, args.Error(1)
}

var _ repo.UserRepository = (*MockUserRepository)(nil)

// =====================
// Mock: AuthValidator
// =====================

type MockAuthValidator struct {
	mock.Mock
}

func (m *MockAuthValidator) ValidateSignIn(ctx context.Context, c *model.Credentials) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockAuthValidator) ValidateSignUp(ctx context.Context, s *model.SignUp) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
