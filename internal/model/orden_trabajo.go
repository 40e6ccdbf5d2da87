package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados of a work order as the counter staff uses them.
const (
	OrdenPendiente  = "pending"
	OrdenCompletada = "completed"
	OrdenEntregada  = "delivered"
)

// OrdenTrabajo is a brake-service work order. NumeroOT is the human-facing
// sequential number shown on the printed sheet; the UUID stays internal.
// Servicios is a JSON map of service flags ({"padReplacement": true, ...}).
type OrdenTrabajo struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NumeroOT     int64           `gorm:"autoIncrement;uniqueIndex;not null"`
	Patente      string          `gorm:"index;not null"`
	Marca        string          `gorm:"not null"`
	Modelo       string          `gorm:"not null"`
	Km           int             `gorm:"not null"`
	FechaIngreso time.Time       `gorm:"not null;default:now()"`
	Total        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Mecanico     string          `gorm:"not null"`
	Supervisor   string          `gorm:"not null"`
	FirmaCliente *string
	Estado       string `gorm:"not null;default:'pending'"`
	Servicios    JSON   `gorm:"type:jsonb;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
