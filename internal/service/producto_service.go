package service

import (
	"context"

	"frenotaller/internal/dto"
	"frenotaller/internal/model"
	"frenotaller/internal/repository"

	"github.com/google/uuid"
)

// ProductoService defines the business logic contract for the parts catalog.
type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	Listar(ctx context.Context, search string) ([]dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type productoService struct {
	repo repository.ProductoRepository
}

func NewProductoService(repo repository.ProductoRepository) ProductoService {
	return &productoService{repo: repo}
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	p := &model.Producto{
		PartNumber:       req.PartNumber,
		MarcaCompatible:  req.MarcaCompatible,
		ModeloCompatible: req.ModeloCompatible,
		Anio:             req.Anio,
		Proveedor:        req.Proveedor,
		Stock:            req.Stock,
		StockMinimo:      req.StockMinimo,
		Calidad:          req.Calidad,
		PrecioVenta:      req.PrecioVenta,
	}
	if p.StockMinimo == 0 {
		p.StockMinimo = 5
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return productoToResponse(p), nil
}

func (s *productoService) Listar(ctx context.Context, search string) ([]dto.ProductoResponse, error) {
	productos, err := s.repo.List(ctx, search)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductoResponse, len(productos))
	for i := range productos {
		resp[i] = *productoToResponse(&productos[i])
	}
	return resp, nil
}

func (s *productoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.PartNumber != nil {
		p.PartNumber = *req.PartNumber
	}
	if req.MarcaCompatible != nil {
		p.MarcaCompatible = *req.MarcaCompatible
	}
	if req.ModeloCompatible != nil {
		p.ModeloCompatible = *req.ModeloCompatible
	}
	if req.Anio != nil {
		p.Anio = *req.Anio
	}
	if req.Proveedor != nil {
		p.Proveedor = *req.Proveedor
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.StockMinimo != nil {
		p.StockMinimo = *req.StockMinimo
	}
	if req.Calidad != nil {
		p.Calidad = *req.Calidad
	}
	if req.PrecioVenta != nil {
		p.PrecioVenta = *req.PrecioVenta
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return productoToResponse(p), nil
}

func (s *productoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func productoToResponse(p *model.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:               p.ID.String(),
		PartNumber:       p.PartNumber,
		MarcaCompatible:  p.MarcaCompatible,
		ModeloCompatible: p.ModeloCompatible,
		Anio:             p.Anio,
		Proveedor:        p.Proveedor,
		Stock:            p.Stock,
		StockMinimo:      p.StockMinimo,
		Calidad:          p.Calidad,
		PrecioVenta:      p.PrecioVenta,
	}
}
