package usecase

import (
	"context"
	"errors"

	"github.com/jhoicas/solar-marketplace-web/internal/application/dto"
	"github.com/jhoicas/solar-marketplace-web/internal/application/ports"
	"github.com/jhoicas/solar-marketplace-web/internal/domain"
	"github.com/jhoicas/solar-marketplace-web/internal/domain/entity"
	"github.com/jhoicas/solar-marketplace-web/pkg/money"
)

// Estados de una vista con datos.
const (
	StateReady    = "ready"
	StateNotFound = "not_found"
)

// OrderUseCase seguimiento de pedidos. El estado del pedido solo se lee; el progreso se deriva.
type OrderUseCase struct {
	api    ports.MarketplaceAPI
	cache  ports.QueryCache
	format *money.Formatter
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(api ports.MarketplaceAPI, cache ports.QueryCache, f *money.Formatter) *OrderUseCase {
	return &OrderUseCase{api: api, cache: cache, format: f}
}

// Track pedido con su progreso. Un pedido inexistente es el estado vacío "not_found", no un error.
func (uc *OrderUseCase) Track(ctx context.Context, s *entity.Session, id string) (*dto.OrderTrackingResponse, error) {
	if id == "" {
		return &dto.OrderTrackingResponse{State: StateNotFound}, nil
	}
	key := ports.CacheKey{Slot: ports.UserSlot(s.UserID, "order:"+id)}
	o, err := fetch(ctx, uc.cache, key, func(ctx context.Context) (*entity.Order, error) {
		return uc.api.GetOrder(ctx, s.Credential, id)
	})
	if errors.Is(err, domain.ErrNotFound) || (err == nil && o == nil) {
		return &dto.OrderTrackingResponse{State: StateNotFound}, nil
	}
	if err != nil {
		return nil, err
	}
	out := toOrderResponse(*o, uc.format)
	return &dto.OrderTrackingResponse{State: StateReady, Order: &out}, nil
}

// List pedidos del usuario, cada uno con su progreso.
func (uc *OrderUseCase) List(ctx context.Context, s *entity.Session) ([]dto.OrderResponse, error) {
	list, err := uc.orders(ctx, s)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list, uc.format), nil
}

func (uc *OrderUseCase) orders(ctx context.Context, s *entity.Session) ([]entity.Order, error) {
	key := ports.CacheKey{Slot: ports.UserSlot(s.UserID, "orders")}
	return fetch(ctx, uc.cache, key, func(ctx context.Context) ([]entity.Order, error) {
		return uc.api.ListOrders(ctx, s.Credential)
	})
}
