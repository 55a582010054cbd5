package httphandler_test

import (
	"context"

	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/niksmo/ecom-admin/internal/core/port"
	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, c domain.Credentials) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockAuthService) Register(ctx context.Context, r domain.Registration) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockAuthService) Logout(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockAuthService) Authenticated() bool {
	return m.Called().Bool(0)
}

type MockOrdersService struct {
	mock.Mock
}

func (m *MockOrdersService) Stats(
	ctx context.Context, status domain.OrderStatus,
) (domain.OrderStats, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(domain.OrderStats), args.Error(1)
}

func (m *MockOrdersService) UpdateOrderStatus(
	ctx context.Context, orderID int64, current, next domain.OrderStatus,
) (bool, error) {
	args := m.Called(ctx, orderID, current, next)
	return args.Bool(0), args.Error(1)
}

type MockProductsService struct {
	mock.Mock
}

func (m *MockProductsService) SubmitBatch(
	ctx context.Context, payload string,
) (port.BatchResult, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(port.BatchResult), args.Error(1)
}

func (m *MockProductsService) AddManualProduct(
	payload string, f domain.ManualProductForm,
) (string, error) {
	args := m.Called(payload, f)
	return args.String(0), args.Error(1)
}

func (m *MockProductsService) CreateProduct(
	ctx context.Context, f domain.ManualProductForm, img domain.Image, categoryID *int64,
) error {
	return m.Called(ctx, f, img, categoryID).Error(0)
}

func (m *MockProductsService) UpdateProduct(
	ctx context.Context, id int64, p domain.ProductPatch,
) error {
	return m.Called(ctx, id, p).Error(0)
}

func (m *MockProductsService) DeleteProduct(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductsService) ListProducts(
	ctx context.Context, categoryID *int64,
) (domain.ProductListing, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(domain.ProductListing), args.Error(1)
}

type MockCategoriesService struct {
	mock.Mock
}

func (m *MockCategoriesService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoriesService) CategoryOptions(ctx context.Context) []domain.Category {
	return m.Called(ctx).Get(0).([]domain.Category)
}

func (m *MockCategoriesService) CreateCategory(
	ctx context.Context, c domain.NewCategory,
) (domain.Category, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockCategoriesService) DeleteCategory(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCategoriesService) AddProductToCategory(
	ctx context.Context, categoryID, productID int64,
) error {
	return m.Called(ctx, categoryID, productID).Error(0)
}

func (m *MockCategoriesService) RemoveProductFromCategory(
	ctx context.Context, categoryID, productID int64,
) error {
	return m.Called(ctx, categoryID, productID).Error(0)
}
