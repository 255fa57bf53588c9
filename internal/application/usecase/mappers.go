package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/solar-marketplace-web/internal/application/dto"
	"github.com/jhoicas/solar-marketplace-web/internal/application/ports"
	"github.com/jhoicas/solar-marketplace-web/internal/domain/entity"
	"github.com/jhoicas/solar-marketplace-web/internal/domain/order"
	"github.com/jhoicas/solar-marketplace-web/pkg/money"
)

// fetch lee a través de la caché y recupera el tipo concreto.
func fetch[T any](ctx context.Context, c ports.QueryCache, key ports.CacheKey, load func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	v, err := c.Fetch(ctx, key, func(ctx context.Context) (any, error) {
		return load(ctx)
	})
	if err != nil {
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("cache: tipo inesperado %T en %s", v, key.Slot)
	}
	return out, nil
}

func toOrderResponse(o entity.Order, f *money.Formatter) dto.OrderResponse {
	p := order.MapStatus(o.Status)
	milestones := make([]dto.MilestoneResponse, 0, len(p.Milestones))
	for _, m := range p.Milestones {
		milestones = append(milestones, dto.MilestoneResponse{Label: m.Label, Completed: m.Completed})
	}
	return dto.OrderResponse{
		ID:              o.ID,
		Status:          string(o.Status),
		TotalAmount:     o.TotalAmount,
		TotalLabel:      f.Format(o.TotalAmount),
		Quantity:        o.Quantity,
		ProductName:     o.ProductName,
		ShippingAddress: o.ShippingAddress,
		CreatedAt:       o.CreatedAt,
		Progress: dto.OrderProgressResponse{
			Percent:    p.Percent,
			Current:    p.Current(),
			Milestones: milestones,
		},
	}
}

func toOrderResponses(list []entity.Order, f *money.Formatter) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResponse(o, f))
	}
	return out
}

func toVendorResponse(v entity.Vendor) dto.VendorResponse {
	return dto.VendorResponse{
		ID:           v.ID,
		BusinessName: v.BusinessName,
		Email:        v.Email,
		Verified:     v.Verified,
		Rating:       v.Rating,
		ProductCount: v.ProductCount,
	}
}

func toInstallerResponse(i entity.Installer) dto.InstallerResponse {
	certs := i.Certifications
	if certs == nil {
		certs = []string{}
	}
	return dto.InstallerResponse{
		ID:             i.ID,
		Name:           i.Name,
		Company:        i.Company,
		Location:       i.Location,
		Certifications: certs,
		Rating:         i.Rating,
		CompletedJobs:  i.CompletedJobs,
		Verified:       i.Verified,
	}
}

func toInstallerResponses(list []entity.Installer) []dto.InstallerResponse {
	out := make([]dto.InstallerResponse, 0, len(list))
	for _, i := range list {
		out = append(out, toInstallerResponse(i))
	}
	return out
}

func toCartResponse(c *entity.Cart, f *money.Formatter) dto.CartResponse {
	items := make([]dto.CartItemResponse, 0)
	if c == nil {
		c = &entity.Cart{}
	}
	for _, it := range c.Items {
		items = append(items, dto.CartItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			Subtotal:    it.Subtotal(),
		})
	}
	total := c.Total()
	return dto.CartResponse{
		Items:      items,
		Count:      c.Count(),
		Total:      total,
		TotalLabel: f.Format(total),
	}
}
