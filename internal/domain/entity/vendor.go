package entity

import "github.com/shopspring/decimal"

// Vendor vendedor de equipos.
type Vendor struct {
	ID           string
	BusinessName string
	Email        string
	Verified     bool
	Rating       decimal.Decimal
	ProductCount int
}

// Installer instalador certificado del directorio.
type Installer struct {
	ID             string
	Name           string
	Company        string
	Location       string
	Certifications []string
	Rating         decimal.Decimal
	CompletedJobs  int
	Verified       bool
}
