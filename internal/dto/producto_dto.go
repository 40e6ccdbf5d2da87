package dto

import "github.com/shopspring/decimal"

type CrearProductoRequest struct {
	PartNumber       string          `json:"part_number"       validate:"required,min=1,max=64"`
	MarcaCompatible  string          `json:"compatible_brand"  validate:"required,min=1,max=64"`
	ModeloCompatible string          `json:"compatible_model"  validate:"required,min=1,max=64"`
	Anio             int             `json:"anio"              validate:"required,gte=1950,lte=2100"`
	Proveedor        string          `json:"proveedor"         validate:"required,min=1,max=100"`
	Stock            int             `json:"stock"             validate:"gte=0"`
	StockMinimo      int             `json:"stock_minimo"      validate:"gte=0"`
	Calidad          string          `json:"calidad"           validate:"required,oneof=Excellent Good Regular Bad"`
	PrecioVenta      decimal.Decimal `json:"precio_venta"      validate:"required"`
}

// ActualizarProductoRequest is a partial update; nil pointers mean "unchanged".
type ActualizarProductoRequest struct {
	PartNumber       *string          `json:"part_number"       validate:"omitempty,min=1,max=64"`
	MarcaCompatible  *string          `json:"compatible_brand"  validate:"omitempty,min=1,max=64"`
	ModeloCompatible *string          `json:"compatible_model"  validate:"omitempty,min=1,max=64"`
	Anio             *int             `json:"anio"              validate:"omitempty,gte=1950,lte=2100"`
	Proveedor        *string          `json:"proveedor"         validate:"omitempty,min=1,max=100"`
	Stock            *int             `json:"stock"             validate:"omitempty,gte=0"`
	StockMinimo      *int             `json:"stock_minimo"      validate:"omitempty,gte=0"`
	Calidad          *string          `json:"calidad"           validate:"omitempty,oneof=Excellent Good Regular Bad"`
	PrecioVenta      *decimal.Decimal `json:"precio_venta"`
}

type ProductoResponse struct {
	ID               string          `json:"id"`
	PartNumber       string          `json:"part_number"`
	MarcaCompatible  string          `json:"compatible_brand"`
	ModeloCompatible string          `json:"compatible_model"`
	Anio             int             `json:"anio"`
	Proveedor        string          `json:"proveedor"`
	Stock            int             `json:"stock"`
	StockMinimo      int             `json:"stock_minimo"`
	Calidad          string          `json:"calidad"`
	PrecioVenta      decimal.Decimal `json:"precio_venta"`
}
