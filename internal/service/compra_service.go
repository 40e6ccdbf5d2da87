package service

import (
	"context"
	"encoding/json"

	"frenotaller/internal/dto"
	"frenotaller/internal/model"
	"frenotaller/internal/repository"
)

type CompraService interface {
	Crear(ctx context.Context, req dto.CrearCompraRequest) (*dto.CompraResponse, error)
	Listar(ctx context.Context) ([]dto.CompraResponse, error)
}

type compraService struct {
	repo repository.CompraRepository
}

func NewCompraService(repo repository.CompraRepository) CompraService {
	return &compraService{repo: repo}
}

func (s *compraService) Crear(ctx context.Context, req dto.CrearCompraRequest) (*dto.CompraResponse, error) {
	items, err := json.Marshal(req.Items)
	if err != nil {
		return nil, err
	}
	c := &model.Compra{
		Proveedor:  req.Proveedor,
		CostoTotal: req.CostoTotal,
		Items:      model.JSON(items),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return compraToResponse(c)
}

func (s *compraService) Listar(ctx context.Context) ([]dto.CompraResponse, error) {
	compras, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CompraResponse, 0, len(compras))
	for i := range compras {
		r, err := compraToResponse(&compras[i])
		if err != nil {
			return nil, err
		}
		resp = append(resp, *r)
	}
	return resp, nil
}

func compraToResponse(c *model.Compra) (*dto.CompraResponse, error) {
	var items []dto.CompraItem
	if len(c.Items) > 0 {
		if err := json.Unmarshal(c.Items, &items); err != nil {
			return nil, err
		}
	}
	return &dto.CompraResponse{
		ID:         c.ID.String(),
		Fecha:      c.Fecha,
		Proveedor:  c.Proveedor,
		CostoTotal: c.CostoTotal,
		Items:      items,
	}, nil
}
