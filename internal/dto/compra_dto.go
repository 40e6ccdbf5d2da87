package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CompraItem struct {
	ProductoID string          `json:"producto_id" validate:"required,uuid4"`
	Cantidad   int             `json:"cantidad"    validate:"required,gt=0"`
	Costo      decimal.Decimal `json:"costo"       validate:"required"`
}

type CrearCompraRequest struct {
	Proveedor  string          `json:"proveedor"   validate:"required,min=1,max=100"`
	CostoTotal decimal.Decimal `json:"costo_total" validate:"required"`
	Items      []CompraItem    `json:"items"       validate:"required,min=1,dive"`
}

type CompraResponse struct {
	ID         string          `json:"id"`
	Fecha      time.Time       `json:"fecha"`
	Proveedor  string          `json:"proveedor"`
	CostoTotal decimal.Decimal `json:"costo_total"`
	Items      []CompraItem    `json:"items"`
}
