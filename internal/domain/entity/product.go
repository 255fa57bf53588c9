package entity

import "github.com/shopspring/decimal"

// Product equipo solar publicado por un vendedor (solo lectura desde el backend).
type Product struct {
	ID          string
	VendorID    string
	VendorName  string
	Name        string
	Description string
	Category    string // panels, inverters, batteries, kits...
	Price       decimal.Decimal
	Stock       int
	ImageURL    string
	Rating      decimal.Decimal
}

// ProductFilter filtro del listado del marketplace.
type ProductFilter struct {
	Category string
	Search   string
}

// Key identidad estable del filtro (variante de caché).
func (f ProductFilter) Key() string {
	return "category=" + f.Category + "&search=" + f.Search
}
