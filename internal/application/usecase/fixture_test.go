package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/solar-marketplace-web/internal/application/ports"
	"github.com/jhoicas/solar-marketplace-web/internal/application/ports/portstest"
	"github.com/jhoicas/solar-marketplace-web/internal/application/usecase"
	"github.com/jhoicas/solar-marketplace-web/internal/domain/entity"
	"github.com/jhoicas/solar-marketplace-web/internal/domain/payment"
	"github.com/jhoicas/solar-marketplace-web/internal/infrastructure/cache"
	"github.com/jhoicas/solar-marketplace-web/pkg/money"
)

// stubPDF captura el documento pedido.
type stubPDF struct {
	last ports.QuoteDocument
}

func (s *stubPDF) GenerateQuotePDF(_ context.Context, doc ports.QuoteDocument) ([]byte, error) {
	s.last = doc
	return []byte("%PDF-1.3 stub"), nil
}

type fixture struct {
	api        *portstest.FakeMarketplace
	cache      *cache.QueryCache
	pdf        *stubPDF
	payment    *usecase.PaymentUseCase
	catalog    *usecase.CatalogUseCase
	orders     *usecase.OrderUseCase
	cart       *usecase.CartUseCase
	dashboards *usecase.DashboardUseCase
	session    *entity.Session
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	calc, err := payment.NewCalculator(payment.DefaultRates())
	require.NoError(t, err)
	f := money.NewFormatter("en-US", "$")

	fx := &fixture{
		api:   portstest.NewFakeMarketplace(),
		cache: cache.NewQueryCache(time.Minute, 100),
		pdf:   &stubPDF{},
		session: &entity.Session{
			UserID:      "u1",
			Role:        entity.RoleBuyer,
			DisplayName: "Ana Ruiz",
			Credential:  entity.Credential{Bearer: "tok"},
		},
	}
	fx.payment = usecase.NewPaymentUseCase(calc, f, fx.pdf, 36)
	fx.catalog = usecase.NewCatalogUseCase(fx.api, fx.cache, fx.payment, f)
	fx.orders = usecase.NewOrderUseCase(fx.api, fx.cache, f)
	fx.cart = usecase.NewCartUseCase(fx.api, fx.cache, f)
	fx.dashboards = usecase.NewDashboardUseCase(fx.catalog, fx.orders, fx.cart, fx.payment)
	return fx
}

func product(id, vendorID, category string, price int64, stock int) entity.Product {
	return entity.Product{
		ID:       id,
		VendorID: vendorID,
		Name:     "Product " + id,
		Category: category,
		Price:    decimal.NewFromInt(price),
		Stock:    stock,
	}
}
