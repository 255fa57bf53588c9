package ports

import (
	"context"

	"github.com/jhoicas/solar-marketplace-web/internal/domain/entity"
)

// LoginResult sesión creada por el backend más la credencial que se reenvía después.
type LoginResult struct {
	Session    entity.Session
	Credential entity.Credential
}

// MarketplaceAPI puerto de salida hacia la API REST del marketplace.
// Los errores envuelven los sentinels de domain (ErrUnauthorized, ErrNotFound, ErrTransient...)
// y, cuando el backend respondió, un *domain.APIError con su mensaje.
type MarketplaceAPI interface {
	CurrentUser(ctx context.Context, cred entity.Credential) (*entity.Session, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context, cred entity.Credential) error

	GetOrder(ctx context.Context, cred entity.Credential, id string) (*entity.Order, error)
	ListOrders(ctx context.Context, cred entity.Credential) ([]entity.Order, error)

	ListProducts(ctx context.Context, cred entity.Credential, filter entity.ProductFilter) ([]entity.Product, error)
	GetProduct(ctx context.Context, cred entity.Credential, id string) (*entity.Product, error)
	ListVendors(ctx context.Context, cred entity.Credential) ([]entity.Vendor, error)
	ListVendorProducts(ctx context.Context, cred entity.Credential, vendorID string) ([]entity.Product, error)
	ListInstallers(ctx context.Context, cred entity.Credential) ([]entity.Installer, error)

	GetCart(ctx context.Context, cred entity.Credential) (*entity.Cart, error)
	AddToCart(ctx context.Context, cred entity.Credential, productID string, quantity int, idempotencyKey string) error
	RemoveFromCart(ctx context.Context, cred entity.Credential, itemID string) error
}
