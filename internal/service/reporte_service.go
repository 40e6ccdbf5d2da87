package service

import (
	"context"
	"time"

	"frenotaller/internal/apierror"
	"frenotaller/internal/dto"
	"frenotaller/internal/repository"
)

const fechaLayout = "2006-01-02"

type ReporteService interface {
	BajoStock(ctx context.Context) (*dto.ReporteBajoStock, error)
	// CajaDiaria aggregates workshop orders and counter sales for one day.
	// An empty fecha means today.
	CajaDiaria(ctx context.Context, fecha string) (*dto.ReporteCajaDiaria, error)
}

type reporteService struct {
	productos repository.ProductoRepository
	ordenes   repository.OrdenRepository
	ventas    repository.VentaRepository
}

func NewReporteService(productos repository.ProductoRepository, ordenes repository.OrdenRepository, ventas repository.VentaRepository) ReporteService {
	return &reporteService{productos: productos, ordenes: ordenes, ventas: ventas}
}

func (s *reporteService) BajoStock(ctx context.Context) (*dto.ReporteBajoStock, error) {
	productos, err := s.productos.ListBajoStock(ctx)
	if err != nil {
		return nil, err
	}
	alertas := make([]dto.ProductoBajoStock, len(productos))
	for i, p := range productos {
		alertas[i] = dto.ProductoBajoStock{
			ID:          p.ID.String(),
			PartNumber:  p.PartNumber,
			Marca:       p.MarcaCompatible,
			Modelo:      p.ModeloCompatible,
			StockActual: p.Stock,
			StockMinimo: p.StockMinimo,
			Diferencia:  p.StockMinimo - p.Stock,
			PrecioVenta: p.PrecioVenta,
		}
	}
	return &dto.ReporteBajoStock{
		TotalAlertas:  len(alertas),
		FechaConsulta: time.Now().Format(fechaLayout),
		Productos:     alertas,
	}, nil
}

func (s *reporteService) CajaDiaria(ctx context.Context, fecha string) (*dto.ReporteCajaDiaria, error) {
	dia := time.Now()
	if fecha != "" {
		parsed, err := time.Parse(fechaLayout, fecha)
		if err != nil {
			// Caller input, not an infrastructure failure: must map to 400.
			return nil, apierror.ErrFechaInvalida
		}
		dia = parsed
	}

	totalTaller, cantOrdenes, err := s.ordenes.TotalesPorFecha(ctx, dia)
	if err != nil {
		return nil, err
	}
	totalMeson, cantVentas, err := s.ventas.TotalesPorFecha(ctx, dia)
	if err != nil {
		return nil, err
	}

	return &dto.ReporteCajaDiaria{
		Fecha:               dia.Format(fechaLayout),
		TotalTaller:         totalTaller,
		CantidadOrdenes:     cantOrdenes,
		TotalMeson:          totalMeson,
		CantidadVentasMeson: cantVentas,
		TotalFinal:          totalTaller.Add(totalMeson),
	}, nil
}
