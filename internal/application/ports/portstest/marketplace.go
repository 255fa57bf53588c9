// Package portstest implementaciones en memoria de los puertos, para tests.
package portstest

import (
	"context"
	"sync"

	"github.com/jhoicas/solar-marketplace-web/internal/application/ports"
	"github.com/jhoicas/solar-marketplace-web/internal/domain"
	"github.com/jhoicas/solar-marketplace-web/internal/domain/entity"
)

var _ ports.MarketplaceAPI = (*FakeMarketplace)(nil)

// FakeMarketplace backend en memoria. Err, si no es nil, lo devuelven todas las llamadas
// autenticadas; LoginErr y LogoutErr aplican solo a esas operaciones.
type FakeMarketplace struct {
	mu sync.Mutex

	Users      map[string]entity.Session // email → sesión
	Orders     map[string]entity.Order
	Products   []entity.Product
	Vendors    []entity.Vendor
	Installers []entity.Installer
	Cart       entity.Cart

	Err       error
	LoginErr  error
	LogoutErr error

	calls map[string]int
	// IdempotencyKeys claves recibidas en AddToCart.
	IdempotencyKeys []string
}

// NewFakeMarketplace backend vacío.
func NewFakeMarketplace() *FakeMarketplace {
	return &FakeMarketplace{
		Users:  map[string]entity.Session{},
		Orders: map[string]entity.Order{},
		calls:  map[string]int{},
	}
}

// Calls veces que se invocó la operación.
func (f *FakeMarketplace) Calls(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

// SetErr cambia el error de las llamadas autenticadas.
func (f *FakeMarketplace) SetErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Err = err
}

func (f *FakeMarketplace) enter(op string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op]++
	return f.Err
}

func (f *FakeMarketplace) CurrentUser(_ context.Context, cred entity.Credential) (*entity.Session, error) {
	if err := f.enter("CurrentUser"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.Users {
		if u.Credential == cred {
			s := u
			return &s, nil
		}
	}
	return nil, &domain.APIError{Status: 401, Message: "Unauthorized", Kind: domain.ErrUnauthorized}
}

func (f *FakeMarketplace) Login(_ context.Context, email, password string) (*ports.LoginResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["Login"]++
	if f.LoginErr != nil {
		return nil, f.LoginErr
	}
	u, ok := f.Users[email]
	if !ok || password == "" {
		return nil, &domain.APIError{Status: 401, Message: "Invalid email or password", Kind: domain.ErrUnauthorized}
	}
	return &ports.LoginResult{Session: u, Credential: u.Credential}, nil
}

func (f *FakeMarketplace) Logout(_ context.Context, _ entity.Credential) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["Logout"]++
	return f.LogoutErr
}

func (f *FakeMarketplace) GetOrder(_ context.Context, _ entity.Credential, id string) (*entity.Order, error) {
	if err := f.enter("GetOrder"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.Orders[id]
	if !ok {
		return nil, &domain.APIError{Status: 404, Message: "Order not found", Kind: domain.ErrNotFound}
	}
	return &o, nil
}

func (f *FakeMarketplace) ListOrders(_ context.Context, _ entity.Credential) ([]entity.Order, error) {
	if err := f.enter("ListOrders"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.Order, 0, len(f.Orders))
	for _, o := range f.Orders {
		out = append(out, o)
	}
	return out, nil
}

func (f *FakeMarketplace) ListProducts(_ context.Context, _ entity.Credential, filter entity.ProductFilter) ([]entity.Product, error) {
	if err := f.enter("ListProducts"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []entity.Product{}
	for _, p := range f.Products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *FakeMarketplace) GetProduct(_ context.Context, _ entity.Credential, id string) (*entity.Product, error) {
	if err := f.enter("GetProduct"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.Products {
		if p.ID == id {
			out := p
			return &out, nil
		}
	}
	return nil, &domain.APIError{Status: 404, Message: "Product not found", Kind: domain.ErrNotFound}
}

func (f *FakeMarketplace) ListVendors(_ context.Context, _ entity.Credential) ([]entity.Vendor, error) {
	if err := f.enter("ListVendors"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]entity.Vendor(nil), f.Vendors...), nil
}

func (f *FakeMarketplace) ListVendorProducts(_ context.Context, _ entity.Credential, vendorID string) ([]entity.Product, error) {
	if err := f.enter("ListVendorProducts"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []entity.Product{}
	for _, p := range f.Products {
		if p.VendorID == vendorID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *FakeMarketplace) ListInstallers(_ context.Context, _ entity.Credential) ([]entity.Installer, error) {
	if err := f.enter("ListInstallers"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]entity.Installer(nil), f.Installers...), nil
}

func (f *FakeMarketplace) GetCart(_ context.Context, _ entity.Credential) (*entity.Cart, error) {
	if err := f.enter("GetCart"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := entity.Cart{Items: append([]entity.CartItem(nil), f.Cart.Items...)}
	return &out, nil
}

func (f *FakeMarketplace) AddToCart(_ context.Context, _ entity.Credential, productID string, quantity int, idempotencyKey string) error {
	if err := f.enter("AddToCart"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.IdempotencyKeys = append(f.IdempotencyKeys, idempotencyKey)
	for _, p := range f.Products {
		if p.ID == productID {
			f.Cart.Items = append(f.Cart.Items, entity.CartItem{
				ID:          "item-" + productID,
				ProductID:   p.ID,
				ProductName: p.Name,
				UnitPrice:   p.Price,
				Quantity:    quantity,
			})
			return nil
		}
	}
	return &domain.APIError{Status: 404, Message: "Product not found", Kind: domain.ErrNotFound}
}

func (f *FakeMarketplace) RemoveFromCart(_ context.Context, _ entity.Credential, itemID string) error {
	if err := f.enter("RemoveFromCart"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, it := range f.Cart.Items {
		if it.ID == itemID {
			f.Cart.Items = append(f.Cart.Items[:i], f.Cart.Items[i+1:]...)
			return nil
		}
	}
	return &domain.APIError{Status: 404, Message: "Item not found", Kind: domain.ErrNotFound}
}
