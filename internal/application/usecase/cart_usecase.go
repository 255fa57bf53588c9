package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/solar-marketplace-web/internal/application/dto"
	"github.com/jhoicas/solar-marketplace-web/internal/application/ports"
	"github.com/jhoicas/solar-marketplace-web/internal/domain"
	"github.com/jhoicas/solar-marketplace-web/internal/domain/entity"
	"github.com/jhoicas/solar-marketplace-web/pkg/money"
)

// CartUseCase lectura del carrito y mutaciones (agregar, quitar).
// Toda mutación exitosa invalida el slot del carrito antes de releerlo.
type CartUseCase struct {
	api    ports.MarketplaceAPI
	cache  ports.QueryCache
	format *money.Formatter
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(api ports.MarketplaceAPI, cache ports.QueryCache, f *money.Formatter) *CartUseCase {
	return &CartUseCase{api: api, cache: cache, format: f}
}

// Get carrito actual.
func (uc *CartUseCase) Get(ctx context.Context, s *entity.Session) (*dto.CartResponse, error) {
	key := ports.CacheKey{Slot: cartSlot(s)}
	cart, err := fetch(ctx, uc.cache, key, func(ctx context.Context) (*entity.Cart, error) {
		return uc.api.GetCart(ctx, s.Credential)
	})
	if err != nil {
		return nil, err
	}
	out := toCartResponse(cart, uc.format)
	return &out, nil
}

// Add agrega un producto y devuelve el carrito releído del backend.
func (uc *CartUseCase) Add(ctx context.Context, s *entity.Session, in dto.AddToCartRequest) (*dto.CartResponse, error) {
	if in.ProductID == "" {
		return nil, domain.NewInvalidInput("product_id", "es requerido")
	}
	if in.Quantity < 1 {
		return nil, domain.NewInvalidInput("quantity", "debe ser al menos 1")
	}
	if err := uc.api.AddToCart(ctx, s.Credential, in.ProductID, in.Quantity, uuid.NewString()); err != nil {
		return nil, fmt.Errorf("agregar al carrito: %w", err)
	}
	uc.cache.Invalidate(cartSlot(s))
	return uc.Get(ctx, s)
}

// Remove quita una línea y devuelve el carrito releído.
func (uc *CartUseCase) Remove(ctx context.Context, s *entity.Session, itemID string) (*dto.CartResponse, error) {
	if itemID == "" {
		return nil, domain.NewInvalidInput("id", "es requerido")
	}
	if err := uc.api.RemoveFromCart(ctx, s.Credential, itemID); err != nil {
		return nil, fmt.Errorf("quitar del carrito: %w", err)
	}
	uc.cache.Invalidate(cartSlot(s))
	return uc.Get(ctx, s)
}

func cartSlot(s *entity.Session) string {
	return ports.UserSlot(s.UserID, "cart")
}
