package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/solar-marketplace-web/internal/application/usecase"
	"github.com/jhoicas/solar-marketplace-web/internal/domain/entity"
)

func TestTrack_Progreso(t *testing.T) {
	fx := newFixture(t)
	fx.api.Orders["o1"] = entity.Order{
		ID:          "o1",
		Status:      entity.OrderEscrow,
		TotalAmount: decimal.NewFromInt(32500),
		Quantity:    1,
		ProductName: "Kit 10kW",
		CreatedAt:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	out, err := fx.orders.Track(context.Background(), fx.session, "o1")
	require.NoError(t, err)
	assert.Equal(t, usecase.StateReady, out.State)
	require.NotNil(t, out.Order)
	assert.Equal(t, 40, out.Order.Progress.Percent)
	assert.Equal(t, "Funds in Escrow", out.Order.Progress.Current)
	assert.Equal(t, "$32,500.00", out.Order.TotalLabel)
	require.Len(t, out.Order.Progress.Milestones, 5)
	assert.True(t, out.Order.Progress.Milestones[2].Completed)
	assert.False(t, out.Order.Progress.Milestones[3].Completed)
}

func TestTrack_NoExisteEsEstadoVacio(t *testing.T) {
	fx := newFixture(t)

	out, err := fx.orders.Track(context.Background(), fx.session, "missing")
	require.NoError(t, err)
	assert.Equal(t, usecase.StateNotFound, out.State)
	assert.Nil(t, out.Order)
}

func TestOrderList_ConProgreso(t *testing.T) {
	fx := newFixture(t)
	fx.api.Orders["o1"] = entity.Order{ID: "o1", Status: entity.OrderCancelled}

	list, err := fx.orders.List(context.Background(), fx.session)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 0, list[0].Progress.Percent)
	assert.True(t, list[0].Progress.Milestones[0].Completed)
	assert.False(t, list[0].Progress.Milestones[1].Completed)
}
