package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto is a brake part in the catalog, keyed by part number plus the
// vehicle it fits. Calidad: "Excellent" | "Good" | "Regular" | "Bad".
type Producto struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PartNumber       string          `gorm:"index;not null"`
	MarcaCompatible  string          `gorm:"not null"`
	ModeloCompatible string          `gorm:"not null"`
	Anio             int             `gorm:"not null"`
	Proveedor        string          `gorm:"not null"`
	Stock            int             `gorm:"not null;default:0"`
	StockMinimo      int             `gorm:"not null;default:5"`
	Calidad          string          `gorm:"not null"`
	PrecioVenta      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
