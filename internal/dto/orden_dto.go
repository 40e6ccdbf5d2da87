package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CrearOrdenRequest struct {
	Patente      string          `json:"patente"       validate:"required,min=1,max=10"`
	Marca        string          `json:"marca"         validate:"required,min=1,max=64"`
	Modelo       string          `json:"modelo"        validate:"required,min=1,max=64"`
	Km           int             `json:"km"            validate:"gte=0"`
	Total        decimal.Decimal `json:"total"         validate:"required"`
	Mecanico     string          `json:"mecanico"      validate:"required,min=1,max=100"`
	Supervisor   string          `json:"supervisor"    validate:"required,min=1,max=100"`
	FirmaCliente *string         `json:"firma_cliente"`
	Estado       string          `json:"estado"        validate:"omitempty,oneof=pending completed delivered"`
	Servicios    map[string]bool `json:"servicios"     validate:"required"`
}

type ActualizarOrdenRequest struct {
	Patente      *string          `json:"patente"       validate:"omitempty,min=1,max=10"`
	Marca        *string          `json:"marca"         validate:"omitempty,min=1,max=64"`
	Modelo       *string          `json:"modelo"        validate:"omitempty,min=1,max=64"`
	Km           *int             `json:"km"            validate:"omitempty,gte=0"`
	Total        *decimal.Decimal `json:"total"`
	Mecanico     *string          `json:"mecanico"      validate:"omitempty,min=1,max=100"`
	Supervisor   *string          `json:"supervisor"    validate:"omitempty,min=1,max=100"`
	FirmaCliente *string          `json:"firma_cliente"`
	Estado       *string          `json:"estado"        validate:"omitempty,oneof=pending completed delivered"`
	Servicios    map[string]bool  `json:"servicios"`
}

type OrdenResponse struct {
	ID           string          `json:"id"`
	NumeroOT     int64           `json:"numero_ot"`
	Patente      string          `json:"patente"`
	Marca        string          `json:"marca"`
	Modelo       string          `json:"modelo"`
	Km           int             `json:"km"`
	FechaIngreso time.Time       `json:"fecha_ingreso"`
	Total        decimal.Decimal `json:"total"`
	Mecanico     string          `json:"mecanico"`
	Supervisor   string          `json:"supervisor"`
	FirmaCliente *string         `json:"firma_cliente"`
	Estado       string          `json:"estado"`
	Servicios    map[string]bool `json:"servicios"`
}
