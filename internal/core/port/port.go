package port

import (
	"context"
	"errors"

	"github.com/niksmo/ecom-admin/internal/core/domain"
)

// Backend is the external e-commerce REST API. Every call carries the
// operator access token explicitly.
type Backend interface {
	AuthBackend
	OrdersBackend
	ProductsBackend
	CategoriesBackend
}

type AuthBackend interface {
	Login(context.Context, domain.Credentials) (domain.Tokens, error)
	Register(context.Context, domain.Registration) error
}

type OrdersBackend interface {
	OrderStats(ctx context.Context, token string) (domain.OrderStats, error)
	UpdateOrderStatus(ctx context.Context, token string, orderID int64, status domain.OrderStatus) error
}

type ProductsBackend interface {
	// CreateProducts returns the number of records the backend reports
	// as created, or -1 if the response does not say.
	CreateProducts(ctx context.Context, token string, ps []domain.NormalizedBatchProduct) (int, error)
	CreateProduct(ctx context.Context, token string, d domain.ProductDraft) error
	UpdateProduct(ctx context.Context, token string, id int64, p domain.ProductPatch) error
	DeleteProduct(ctx context.Context, token string, id int64) error
	RandomProducts(ctx context.Context, token string, count int) ([]domain.Product, error)
}

type CategoriesBackend interface {
	Categories(ctx context.Context, token string) ([]domain.Category, error)
	CreateCategory(ctx context.Context, token string, c domain.NewCategory) (domain.Category, error)
	DeleteCategory(ctx context.Context, token string, id int64) error
	AddProductToCategory(ctx context.Context, token string, categoryID, productID int64) error
	RemoveProductFromCategory(ctx context.Context, token string, categoryID, productID int64) error
}

// TokenStore persists the session tokens. Load reports ok=false when
// nothing is stored.
type TokenStore interface {
	Load(context.Context) (t domain.Tokens, ok bool, err error)
	Save(context.Context, domain.Tokens) error
	Delete(context.Context) error
}

type AuditPublisher interface {
	PublishAudit(context.Context, domain.AuditEvent) error
}

type Session interface {
	AccessToken() string
	Authenticated() bool
	Set(context.Context, domain.Tokens) error
	Clear(context.Context) error
}

// Inbound use cases served by the http adapter.

type AuthService interface {
	Login(context.Context, domain.Credentials) error
	Register(context.Context, domain.Registration) error
	Logout(context.Context) error
	Authenticated() bool
}

type OrdersService interface {
	Stats(ctx context.Context, status domain.OrderStatus) (domain.OrderStats, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, current, next domain.OrderStatus) (changed bool, err error)
}

type BatchResult struct {
	Created    int
	TotalPrice float64
}

type ProductsService interface {
	SubmitBatch(ctx context.Context, payload string) (BatchResult, error)
	AddManualProduct(payload string, f domain.ManualProductForm) (string, error)
	CreateProduct(ctx context.Context, f domain.ManualProductForm, img domain.Image, categoryID *int64) error
	UpdateProduct(ctx context.Context, id int64, p domain.ProductPatch) error
	DeleteProduct(ctx context.Context, id int64) error
	ListProducts(ctx context.Context, categoryID *int64) (domain.ProductListing, error)
}

type CategoriesService interface {
	ListCategories(context.Context) ([]domain.Category, error)
	CategoryOptions(context.Context) []domain.Category
	CreateCategory(context.Context, domain.NewCategory) (domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
	AddProductToCategory(ctx context.Context, categoryID, productID int64) error
	RemoveProductFromCategory(ctx context.Context, categoryID, productID int64) error
}

var (
	// ErrBackend is matched by every failed backend call.
	ErrBackend = errors.New("backend request failed")

	// ErrUnauthorized is matched by backend errors for a rejected token.
	ErrUnauthorized = errors.New("unauthorized")
)
