package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/solar-marketplace-web/internal/application/dto"
	"github.com/jhoicas/solar-marketplace-web/internal/application/ports"
	"github.com/jhoicas/solar-marketplace-web/internal/domain"
	"github.com/jhoicas/solar-marketplace-web/internal/domain/entity"
	"github.com/jhoicas/solar-marketplace-web/pkg/money"
)

// featuredLimit productos destacados en la vista "buyer".
const featuredLimit = 6

// CatalogUseCase vistas de catálogo: marketplace, detalle de producto, directorio de instaladores.
type CatalogUseCase struct {
	api     ports.MarketplaceAPI
	cache   ports.QueryCache
	payment *PaymentUseCase
	format  *money.Formatter
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(api ports.MarketplaceAPI, cache ports.QueryCache, payment *PaymentUseCase, f *money.Formatter) *CatalogUseCase {
	return &CatalogUseCase{api: api, cache: cache, payment: payment, format: f}
}

// Marketplace lista productos con filtro. Si el usuario cambia el filtro antes de que
// responda la petición anterior, esa respuesta se descarta (domain.ErrSuperseded).
func (uc *CatalogUseCase) Marketplace(ctx context.Context, s *entity.Session, in dto.ProductFilterRequest) (*dto.ProductListResponse, error) {
	filter := entity.ProductFilter{Category: in.Category, Search: in.Search}
	list, err := uc.products(ctx, s, filter)
	if err != nil {
		return nil, err
	}
	items := uc.toProductResponses(list)
	return &dto.ProductListResponse{
		Items:    items,
		Category: filter.Category,
		Search:   filter.Search,
		Total:    len(items),
	}, nil
}

// ProductDetail detalle con plan completo y plan a cuotas. Devuelve domain.ErrNotFound si no existe.
func (uc *CatalogUseCase) ProductDetail(ctx context.Context, s *entity.Session, id string) (*dto.ProductDetailResponse, error) {
	if id == "" {
		return nil, domain.NewInvalidInput("id", "es requerido")
	}
	key := ports.CacheKey{Slot: ports.UserSlot(s.UserID, "product:"+id)}
	p, err := fetch(ctx, uc.cache, key, func(ctx context.Context) (*entity.Product, error) {
		return uc.api.GetProduct(ctx, s.Credential, id)
	})
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	full, installment, err := uc.payment.Plans(p.Price)
	if err != nil {
		return nil, err
	}
	return &dto.ProductDetailResponse{
		Product:     uc.toProductResponse(*p),
		FullPlan:    full,
		Installment: installment,
	}, nil
}

// Installers directorio de instaladores.
func (uc *CatalogUseCase) Installers(ctx context.Context, s *entity.Session) (*dto.InstallerListResponse, error) {
	list, err := uc.installers(ctx, s)
	if err != nil {
		return nil, err
	}
	items := toInstallerResponses(list)
	return &dto.InstallerListResponse{Items: items, Total: len(items)}, nil
}

// BuyerHome productos destacados e instaladores, en paralelo.
func (uc *CatalogUseCase) BuyerHome(ctx context.Context, s *entity.Session) (*dto.BuyerHomeResponse, error) {
	var (
		products   []entity.Product
		installers []entity.Installer
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = uc.products(gctx, s, entity.ProductFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		installers, err = uc.installers(gctx, s)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if len(products) > featuredLimit {
		products = products[:featuredLimit]
	}
	return &dto.BuyerHomeResponse{
		Featured:   uc.toProductResponses(products),
		Installers: toInstallerResponses(installers),
	}, nil
}

// VendorProducts productos publicados por un vendedor.
func (uc *CatalogUseCase) VendorProducts(ctx context.Context, s *entity.Session, vendorID string) ([]dto.ProductResponse, error) {
	key := ports.CacheKey{Slot: ports.UserSlot(s.UserID, "vendor-products:"+vendorID)}
	list, err := fetch(ctx, uc.cache, key, func(ctx context.Context) ([]entity.Product, error) {
		return uc.api.ListVendorProducts(ctx, s.Credential, vendorID)
	})
	if err != nil {
		return nil, err
	}
	return uc.toProductResponses(list), nil
}

// Vendors listado de vendedores (dashboard admin).
func (uc *CatalogUseCase) Vendors(ctx context.Context, s *entity.Session) ([]dto.VendorResponse, error) {
	key := ports.CacheKey{Slot: ports.UserSlot(s.UserID, "vendors")}
	list, err := fetch(ctx, uc.cache, key, func(ctx context.Context) ([]entity.Vendor, error) {
		return uc.api.ListVendors(ctx, s.Credential)
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.VendorResponse, 0, len(list))
	for _, v := range list {
		out = append(out, toVendorResponse(v))
	}
	return out, nil
}

func (uc *CatalogUseCase) products(ctx context.Context, s *entity.Session, filter entity.ProductFilter) ([]entity.Product, error) {
	key := ports.CacheKey{Slot: ports.UserSlot(s.UserID, "products"), Variant: filter.Key()}
	return fetch(ctx, uc.cache, key, func(ctx context.Context) ([]entity.Product, error) {
		return uc.api.ListProducts(ctx, s.Credential, filter)
	})
}

func (uc *CatalogUseCase) installers(ctx context.Context, s *entity.Session) ([]entity.Installer, error) {
	key := ports.CacheKey{Slot: ports.UserSlot(s.UserID, "installers")}
	return fetch(ctx, uc.cache, key, func(ctx context.Context) ([]entity.Installer, error) {
		return uc.api.ListInstallers(ctx, s.Credential)
	})
}

func (uc *CatalogUseCase) toProductResponse(p entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		VendorID:    p.VendorID,
		VendorName:  p.VendorName,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		PriceLabel:  uc.format.Format(p.Price),
		Stock:       p.Stock,
		InStock:     p.Stock > 0,
		ImageURL:    p.ImageURL,
		Rating:      p.Rating,
		Financing:   uc.payment.Preview(p.Price),
	}
}

func (uc *CatalogUseCase) toProductResponses(list []entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, uc.toProductResponse(p))
	}
	return out
}
