package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Movement types for counter stock exits.
const (
	MovimientoVenta      = "VENTA"
	MovimientoPerdida    = "PERDIDA"
	MovimientoUsoInterno = "USO_INTERNO"
)

// VentaMostrador is a counter sale (or loss / internal-use stock exit).
// Detalles holds the sold lines as JSON: [{sku, cantidad, precio_venta}].
type VentaMostrador struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TipoMovimiento string          `gorm:"index;not null;default:'VENTA'"`
	Fecha          time.Time       `gorm:"index;not null;default:now()"`
	TotalVenta     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Comprador      *string
	Comentario     *string
	Detalles       JSON `gorm:"type:jsonb;not null"`
	CreatedAt      time.Time
}
