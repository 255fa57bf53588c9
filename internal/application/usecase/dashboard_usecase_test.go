package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/solar-marketplace-web/internal/domain/entity"
)

func TestDashboardBuyer(t *testing.T) {
	fx := newFixture(t)
	fx.api.Orders["o1"] = entity.Order{ID: "o1", Status: entity.OrderPaid}
	fx.api.Cart = entity.Cart{Items: []entity.CartItem{{ID: "i1", ProductID: "p1", UnitPrice: decimal.NewFromInt(25000), Quantity: 1}}}

	out, err := fx.dashboards.Buyer(context.Background(), fx.session)
	require.NoError(t, err)
	require.Len(t, out.Orders, 1)
	assert.Equal(t, 25, out.Orders[0].Progress.Percent)
	assert.Equal(t, 1, out.Cart.Count)
	assert.Equal(t, "installment", out.Calculator.PaymentType)
	assert.Equal(t, "902.78", out.Calculator.MonthlyPayment.StringFixed(2))
}

func TestDashboardVendor(t *testing.T) {
	fx := newFixture(t)
	fx.session.UserID = "v1"
	fx.session.Role = entity.RoleVendor
	fx.api.Products = []entity.Product{
		product("p1", "v1", "panels", 250, 2),
		product("p2", "v1", "panels", 250, 20),
		product("p3", "v2", "panels", 250, 0),
	}
	fx.api.Orders["o1"] = entity.Order{ID: "o1", Status: entity.OrderInstalling}
	fx.api.Orders["o2"] = entity.Order{ID: "o2", Status: entity.OrderCompleted}

	out, err := fx.dashboards.Vendor(context.Background(), fx.session)
	require.NoError(t, err)
	assert.Len(t, out.Products, 2)
	assert.Equal(t, 1, out.LowStockCount)
	assert.Equal(t, 1, out.ActiveOrders)
}

func TestDashboardAdmin(t *testing.T) {
	fx := newFixture(t)
	fx.session.Role = entity.RoleAdmin
	fx.api.Vendors = []entity.Vendor{{ID: "v1", Verified: true}, {ID: "v2"}}
	fx.api.Installers = []entity.Installer{{ID: "i1"}}
	fx.api.Orders["o1"] = entity.Order{ID: "o1", Status: entity.OrderPending}
	fx.api.Orders["o2"] = entity.Order{ID: "o2", Status: entity.OrderPending}

	out, err := fx.dashboards.Admin(context.Background(), fx.session)
	require.NoError(t, err)
	assert.Equal(t, 2, out.PendingVerified)
	assert.Equal(t, map[string]int{"pending": 2}, out.OrdersByStatus)
	assert.Len(t, out.Vendors, 2)
}
