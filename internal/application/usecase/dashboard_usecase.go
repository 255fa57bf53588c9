package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/solar-marketplace-web/internal/application/dto"
	"github.com/jhoicas/solar-marketplace-web/internal/domain/entity"
)

// lowStockThreshold unidades por debajo de las cuales un producto cuenta como stock bajo.
const lowStockThreshold = 5

// DashboardUseCase compone los dashboards por rol. Cada dashboard lanza sus lecturas
// en paralelo; son independientes entre sí.
type DashboardUseCase struct {
	catalog *CatalogUseCase
	orders  *OrderUseCase
	cart    *CartUseCase
	payment *PaymentUseCase
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(catalog *CatalogUseCase, orders *OrderUseCase, cart *CartUseCase, payment *PaymentUseCase) *DashboardUseCase {
	return &DashboardUseCase{catalog: catalog, orders: orders, cart: cart, payment: payment}
}

// Buyer pedidos con progreso, carrito y la calculadora precargada con el total del carrito.
func (uc *DashboardUseCase) Buyer(ctx context.Context, s *entity.Session) (*dto.BuyerDashboardResponse, error) {
	var (
		orders []dto.OrderResponse
		cart   *dto.CartResponse
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = uc.orders.List(gctx, s)
		return err
	})
	g.Go(func() error {
		var err error
		cart, err = uc.cart.Get(gctx, s)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	_, installment, err := uc.payment.Plans(cart.Total)
	if err != nil {
		return nil, err
	}
	return &dto.BuyerDashboardResponse{Orders: orders, Cart: *cart, Calculator: installment}, nil
}

// Vendor productos del vendedor y sus pedidos.
func (uc *DashboardUseCase) Vendor(ctx context.Context, s *entity.Session) (*dto.VendorDashboardResponse, error) {
	var (
		products []dto.ProductResponse
		orders   []dto.OrderResponse
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = uc.catalog.VendorProducts(gctx, s, s.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = uc.orders.List(gctx, s)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &dto.VendorDashboardResponse{Products: products, Orders: orders}
	for _, p := range products {
		if p.Stock < lowStockThreshold {
			out.LowStockCount++
		}
	}
	for _, o := range orders {
		if isActive(entity.OrderStatus(o.Status)) {
			out.ActiveOrders++
		}
	}
	return out, nil
}

// Admin vendedores, instaladores y pedidos de la plataforma.
func (uc *DashboardUseCase) Admin(ctx context.Context, s *entity.Session) (*dto.AdminDashboardResponse, error) {
	var (
		vendors    []dto.VendorResponse
		installers *dto.InstallerListResponse
		orders     []dto.OrderResponse
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		vendors, err = uc.catalog.Vendors(gctx, s)
		return err
	})
	g.Go(func() error {
		var err error
		installers, err = uc.catalog.Installers(gctx, s)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = uc.orders.List(gctx, s)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &dto.AdminDashboardResponse{
		Vendors:        vendors,
		Installers:     installers.Items,
		Orders:         orders,
		OrdersByStatus: make(map[string]int),
	}
	for _, o := range orders {
		out.OrdersByStatus[o.Status]++
	}
	for _, v := range vendors {
		if !v.Verified {
			out.PendingVerified++
		}
	}
	for _, i := range installers.Items {
		if !i.Verified {
			out.PendingVerified++
		}
	}
	return out, nil
}

// isActive pedido en curso: ni completado ni cancelado.
func isActive(status entity.OrderStatus) bool {
	return status != entity.OrderCompleted && status != entity.OrderCancelled
}
