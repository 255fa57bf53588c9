package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/solar-marketplace-web/internal/application/dto"
	"github.com/jhoicas/solar-marketplace-web/internal/domain"
	"github.com/jhoicas/solar-marketplace-web/internal/domain/entity"
)

func TestMarketplace_FiltroYCache(t *testing.T) {
	fx := newFixture(t)
	fx.api.Products = []entity.Product{
		product("p1", "v1", "panels", 250, 10),
		product("p2", "v1", "batteries", 5000, 2),
	}
	ctx := context.Background()

	out, err := fx.catalog.Marketplace(ctx, fx.session, dto.ProductFilterRequest{Category: "panels"})
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "p1", out.Items[0].ID)
	assert.Equal(t, "$250.00", out.Items[0].PriceLabel)
	assert.Equal(t, 36, out.Items[0].Financing.InstallmentMonths)

	_, err = fx.catalog.Marketplace(ctx, fx.session, dto.ProductFilterRequest{Category: "panels"})
	require.NoError(t, err)
	assert.Equal(t, 1, fx.api.Calls("ListProducts"), "mismo filtro sale de la caché")

	out, err = fx.catalog.Marketplace(ctx, fx.session, dto.ProductFilterRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, 2, fx.api.Calls("ListProducts"))
}

func TestProductDetail(t *testing.T) {
	fx := newFixture(t)
	fx.api.Products = []entity.Product{product("p1", "v1", "panels", 25000, 3)}

	out, err := fx.catalog.ProductDetail(context.Background(), fx.session, "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", out.Product.ID)
	assert.Equal(t, "full", out.FullPlan.PaymentType)
	assert.Equal(t, "902.78", out.Installment.MonthlyPayment.StringFixed(2))
}

func TestProductDetail_NoExiste(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.catalog.ProductDetail(context.Background(), fx.session, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBuyerHome_LimitaDestacados(t *testing.T) {
	fx := newFixture(t)
	for i := 0; i < 9; i++ {
		fx.api.Products = append(fx.api.Products, product(fmt.Sprintf("p%d", i), "v1", "panels", 100, 1))
	}
	fx.api.Installers = []entity.Installer{{ID: "i1", Name: "SunFix", Verified: true}}

	out, err := fx.catalog.BuyerHome(context.Background(), fx.session)
	require.NoError(t, err)
	assert.Len(t, out.Featured, 6)
	require.Len(t, out.Installers, 1)
	assert.Equal(t, []string{}, out.Installers[0].Certifications)
}

func TestBuyerHome_ErrorTransitorio(t *testing.T) {
	fx := newFixture(t)
	fx.api.SetErr(fmt.Errorf("backend: %w", domain.ErrTransient))

	_, err := fx.catalog.BuyerHome(context.Background(), fx.session)
	assert.ErrorIs(t, err, domain.ErrTransient)
}
