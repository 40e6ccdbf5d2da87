package service

import (
	"context"
	"encoding/json"

	"frenotaller/internal/dto"
	"frenotaller/internal/model"
	"frenotaller/internal/repository"

	"github.com/shopspring/decimal"
)

type VentaService interface {
	Crear(ctx context.Context, req dto.CrearVentaRequest) (*dto.VentaResponse, error)
	Listar(ctx context.Context, tipo string) ([]dto.VentaResponse, error)
}

type ventaService struct {
	repo repository.VentaRepository
}

func NewVentaService(repo repository.VentaRepository) VentaService {
	return &ventaService{repo: repo}
}

func (s *ventaService) Crear(ctx context.Context, req dto.CrearVentaRequest) (*dto.VentaResponse, error) {
	// Total is computed server-side from the lines; losses and internal use
	// carry unit prices of zero and total zero.
	total := decimal.Zero
	if req.TipoMovimiento == model.MovimientoVenta {
		for _, item := range req.Items {
			total = total.Add(item.PrecioVenta.Mul(decimal.NewFromInt(int64(item.Cantidad))))
		}
	}

	detalles, err := json.Marshal(req.Items)
	if err != nil {
		return nil, err
	}
	v := &model.VentaMostrador{
		TipoMovimiento: req.TipoMovimiento,
		TotalVenta:     total,
		Comprador:      req.Comprador,
		Comentario:     req.Comentario,
		Detalles:       model.JSON(detalles),
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return ventaToResponse(v)
}

func (s *ventaService) Listar(ctx context.Context, tipo string) ([]dto.VentaResponse, error) {
	ventas, err := s.repo.List(ctx, tipo)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.VentaResponse, 0, len(ventas))
	for i := range ventas {
		r, err := ventaToResponse(&ventas[i])
		if err != nil {
			return nil, err
		}
		resp = append(resp, *r)
	}
	return resp, nil
}

func ventaToResponse(v *model.VentaMostrador) (*dto.VentaResponse, error) {
	var items []dto.VentaItem
	if len(v.Detalles) > 0 {
		if err := json.Unmarshal(v.Detalles, &items); err != nil {
			return nil, err
		}
	}
	return &dto.VentaResponse{
		ID:             v.ID.String(),
		TipoMovimiento: v.TipoMovimiento,
		Fecha:          v.Fecha,
		TotalVenta:     v.TotalVenta,
		Comprador:      v.Comprador,
		Comentario:     v.Comentario,
		Items:          items,
	}, nil
}
