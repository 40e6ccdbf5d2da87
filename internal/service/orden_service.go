package service

import (
	"context"
	"encoding/json"

	"frenotaller/internal/dto"
	"frenotaller/internal/model"
	"frenotaller/internal/repository"

	"github.com/google/uuid"
)

type OrdenService interface {
	Crear(ctx context.Context, req dto.CrearOrdenRequest) (*dto.OrdenResponse, error)
	Listar(ctx context.Context, search string) ([]dto.OrdenResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarOrdenRequest) (*dto.OrdenResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type ordenService struct {
	repo repository.OrdenRepository
}

func NewOrdenService(repo repository.OrdenRepository) OrdenService {
	return &ordenService{repo: repo}
}

func (s *ordenService) Crear(ctx context.Context, req dto.CrearOrdenRequest) (*dto.OrdenResponse, error) {
	servicios, err := json.Marshal(req.Servicios)
	if err != nil {
		return nil, err
	}
	estado := req.Estado
	if estado == "" {
		estado = model.OrdenPendiente
	}
	o := &model.OrdenTrabajo{
		Patente:      req.Patente,
		Marca:        req.Marca,
		Modelo:       req.Modelo,
		Km:           req.Km,
		Total:        req.Total,
		Mecanico:     req.Mecanico,
		Supervisor:   req.Supervisor,
		FirmaCliente: req.FirmaCliente,
		Estado:       estado,
		Servicios:    model.JSON(servicios),
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return ordenToResponse(o)
}

func (s *ordenService) Listar(ctx context.Context, search string) ([]dto.OrdenResponse, error) {
	ordenes, err := s.repo.List(ctx, search)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.OrdenResponse, 0, len(ordenes))
	for i := range ordenes {
		r, err := ordenToResponse(&ordenes[i])
		if err != nil {
			return nil, err
		}
		resp = append(resp, *r)
	}
	return resp, nil
}

func (s *ordenService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarOrdenRequest) (*dto.OrdenResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Patente != nil {
		o.Patente = *req.Patente
	}
	if req.Marca != nil {
		o.Marca = *req.Marca
	}
	if req.Modelo != nil {
		o.Modelo = *req.Modelo
	}
	if req.Km != nil {
		o.Km = *req.Km
	}
	if req.Total != nil {
		o.Total = *req.Total
	}
	if req.Mecanico != nil {
		o.Mecanico = *req.Mecanico
	}
	if req.Supervisor != nil {
		o.Supervisor = *req.Supervisor
	}
	if req.FirmaCliente != nil {
		o.FirmaCliente = req.FirmaCliente
	}
	if req.Estado != nil {
		o.Estado = *req.Estado
	}
	if req.Servicios != nil {
		servicios, err := json.Marshal(req.Servicios)
		if err != nil {
			return nil, err
		}
		o.Servicios = model.JSON(servicios)
	}
	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return ordenToResponse(o)
}

func (s *ordenService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func ordenToResponse(o *model.OrdenTrabajo) (*dto.OrdenResponse, error) {
	servicios := map[string]bool{}
	if len(o.Servicios) > 0 {
		if err := json.Unmarshal(o.Servicios, &servicios); err != nil {
			return nil, err
		}
	}
	return &dto.OrdenResponse{
		ID:           o.ID.String(),
		NumeroOT:     o.NumeroOT,
		Patente:      o.Patente,
		Marca:        o.Marca,
		Modelo:       o.Modelo,
		Km:           o.Km,
		FechaIngreso: o.FechaIngreso,
		Total:        o.Total,
		Mecanico:     o.Mecanico,
		Supervisor:   o.Supervisor,
		FirmaCliente: o.FirmaCliente,
		Estado:       o.Estado,
		Servicios:    servicios,
	}, nil
}
