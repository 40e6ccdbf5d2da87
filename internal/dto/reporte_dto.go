package dto

import "github.com/shopspring/decimal"

type ProductoBajoStock struct {
	ID          string          `json:"id"`
	PartNumber  string          `json:"part_number"`
	Marca       string          `json:"marca"`
	Modelo      string          `json:"modelo"`
	StockActual int             `json:"stock_actual"`
	StockMinimo int             `json:"stock_minimo"`
	Diferencia  int             `json:"diferencia"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
}

type ReporteBajoStock struct {
	TotalAlertas  int                 `json:"total_alertas"`
	FechaConsulta string              `json:"fecha_consulta"`
	Productos     []ProductoBajoStock `json:"productos"`
}

type ReporteCajaDiaria struct {
	Fecha               string          `json:"fecha"`
	TotalTaller         decimal.Decimal `json:"total_taller"`
	CantidadOrdenes     int64           `json:"cantidad_ordenes"`
	TotalMeson          decimal.Decimal `json:"total_meson"`
	CantidadVentasMeson int64           `json:"cantidad_ventas_meson"`
	TotalFinal          decimal.Decimal `json:"total_final"`
}
