package service_test

import (
	"context"

	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) Login(ctx context.Context, c domain.Credentials) (domain.Tokens, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(domain.Tokens), args.Error(1)
}

func (m *MockBackend) Register(ctx context.Context, r domain.Registration) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockBackend) OrderStats(ctx context.Context, token string) (domain.OrderStats, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.OrderStats), args.Error(1)
}

func (m *MockBackend) UpdateOrderStatus(
	ctx context.Context, token string, orderID int64, status domain.OrderStatus,
) error {
	return m.Called(ctx, token, orderID, status).Error(0)
}

func (m *MockBackend) CreateProducts(
	ctx context.Context, token string, ps []domain.NormalizedBatchProduct,
) (int, error) {
	args := m.Called(ctx, token, ps)
	return args.Int(0), args.Error(1)
}

func (m *MockBackend) CreateProduct(ctx context.Context, token string, d domain.ProductDraft) error {
	return m.Called(ctx, token, d).Error(0)
}

func (m *MockBackend) UpdateProduct(
	ctx context.Context, token string, id int64, p domain.ProductPatch,
) error {
	return m.Called(ctx, token, id, p).Error(0)
}

func (m *MockBackend) DeleteProduct(ctx context.Context, token string, id int64) error {
	return m.Called(ctx, token, id).Error(0)
}

func (m *MockBackend) RandomProducts(
	ctx context.Context, token string, count int,
) ([]domain.Product, error) {
	args := m.Called(ctx, token, count)
	ps, _ := args.Get(0).([]domain.Product)
	return ps, args.Error(1)
}

func (m *MockBackend) Categories(ctx context.Context, token string) ([]domain.Category, error) {
	args := m.Called(ctx, token)
	cats, _ := args.Get(0).([]domain.Category)
	return cats, args.Error(1)
}

func (m *MockBackend) CreateCategory(
	ctx context.Context, token string, c domain.NewCategory,
) (domain.Category, error) {
	args := m.Called(ctx, token, c)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockBackend) DeleteCategory(ctx context.Context, token string, id int64) error {
	return m.Called(ctx, token, id).Error(0)
}

func (m *MockBackend) AddProductToCategory(
	ctx context.Context, token string, categoryID, productID int64,
) error {
	return m.Called(ctx, token, categoryID, productID).Error(0)
}

func (m *MockBackend) RemoveProductFromCategory(
	ctx context.Context, token string, categoryID, productID int64,
) error {
	return m.Called(ctx, token, categoryID, productID).Error(0)
}

// fakeSession is an in-memory session.
type fakeSession struct {
	tokens  domain.Tokens
	setErr  error
	cleared int
}

func (s *fakeSession) AccessToken() string { return s.tokens.AccessToken }

func (s *fakeSession) Authenticated() bool { return !s.tokens.Empty() }

func (s *fakeSession) Set(_ context.Context, t domain.Tokens) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.tokens = t
	return nil
}

func (s *fakeSession) Clear(context.Context) error {
	s.cleared++
	s.tokens = domain.Tokens{}
	return nil
}

type MockAuditPublisher struct {
	mock.Mock
}

func (m *MockAuditPublisher) PublishAudit(ctx context.Context, e domain.AuditEvent) error {
	return m.Called(ctx, e).Error(0)
}
