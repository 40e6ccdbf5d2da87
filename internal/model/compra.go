package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Compra is a supplier purchase. Items holds the purchased lines as JSON:
// [{producto_id, cantidad, costo}].
type Compra struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Fecha      time.Time       `gorm:"not null;default:now()"`
	Proveedor  string          `gorm:"not null"`
	CostoTotal decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Items      JSON            `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time
}
