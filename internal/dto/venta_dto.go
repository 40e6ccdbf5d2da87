package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type VentaItem struct {
	Sku         string          `json:"sku"          validate:"required,min=1,max=64"`
	Cantidad    int             `json:"cantidad"     validate:"required,gt=0"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
}

type CrearVentaRequest struct {
	TipoMovimiento string      `json:"tipo_movimiento" validate:"required,oneof=VENTA PERDIDA USO_INTERNO"`
	Comprador      *string     `json:"comprador"`
	Comentario     *string     `json:"comentario"`
	Items          []VentaItem `json:"items" validate:"required,min=1,dive"`
}

type VentaResponse struct {
	ID             string          `json:"id"`
	TipoMovimiento string          `json:"tipo_movimiento"`
	Fecha          time.Time       `json:"fecha"`
	TotalVenta     decimal.Decimal `json:"total_venta"`
	Comprador      *string         `json:"comprador"`
	Comentario     *string         `json:"comentario"`
	Items          []VentaItem     `json:"items"`
}
