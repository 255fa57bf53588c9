package backend

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/solar-marketplace-web/internal/domain/entity"
)

// Estructuras del protocolo JSON del backend (camelCase).

type messagePayload struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

type userPayload struct {
	ID              string `json:"id"`
	Role            string `json:"role"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	ProfileImageURL string `json:"profileImageUrl"`
}

func (u userPayload) toEntity() entity.Session {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		name = u.Email
	}
	return entity.Session{
		UserID:      u.ID,
		Role:        entity.Role(u.Role),
		DisplayName: name,
		Email:       u.Email,
		AvatarURL:   u.ProfileImageURL,
	}
}

type loginPayload struct {
	Token string       `json:"token"`
	User  *userPayload `json:"user"`
}

type orderPayload struct {
	ID              string          `json:"id"`
	Status          string          `json:"status"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Quantity        int             `json:"quantity"`
	ProductName     string          `json:"productName"`
	ShippingAddress string          `json:"shippingAddress"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func (o orderPayload) toEntity() entity.Order {
	return entity.Order{
		ID:              o.ID,
		Status:          entity.OrderStatus(o.Status),
		TotalAmount:     o.TotalAmount,
		Quantity:        o.Quantity,
		ProductName:     o.ProductName,
		ShippingAddress: o.ShippingAddress,
		CreatedAt:       o.CreatedAt,
	}
}

type productPayload struct {
	ID          string          `json:"id"`
	VendorID    string          `json:"vendorId"`
	VendorName  string          `json:"vendorName"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	ImageURL    string          `json:"imageUrl"`
	Rating      decimal.Decimal `json:"rating"`
}

func (p productPayload) toEntity() entity.Product {
	return entity.Product{
		ID:          p.ID,
		VendorID:    p.VendorID,
		VendorName:  p.VendorName,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		Rating:      p.Rating,
	}
}

type vendorPayload struct {
	ID           string          `json:"id"`
	BusinessName string          `json:"businessName"`
	Email        string          `json:"email"`
	Verified     bool            `json:"verified"`
	Rating       decimal.Decimal `json:"rating"`
	ProductCount int             `json:"productCount"`
}

func (v vendorPayload) toEntity() entity.Vendor {
	return entity.Vendor{
		ID:           v.ID,
		BusinessName: v.BusinessName,
		Email:        v.Email,
		Verified:     v.Verified,
		Rating:       v.Rating,
		ProductCount: v.ProductCount,
	}
}

type installerPayload struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Company        string          `json:"company"`
	Location       string          `json:"location"`
	Certifications []string        `json:"certifications"`
	Rating         decimal.Decimal `json:"rating"`
	CompletedJobs  int             `json:"completedJobs"`
	Verified       bool            `json:"verified"`
}

func (i installerPayload) toEntity() entity.Installer {
	return entity.Installer{
		ID:             i.ID,
		Name:           i.Name,
		Company:        i.Company,
		Location:       i.Location,
		Certifications: i.Certifications,
		Rating:         i.Rating,
		CompletedJobs:  i.CompletedJobs,
		Verified:       i.Verified,
	}
}

type cartItemPayload struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
}

type cartPayload struct {
	Items []cartItemPayload `json:"items"`
}

func (c cartPayload) toEntity() entity.Cart {
	items := make([]entity.CartItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, entity.CartItem{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
		})
	}
	return entity.Cart{Items: items}
}
