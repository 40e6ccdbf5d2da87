package repository

import (
	"context"
	"errors"
	"time"

	"frenotaller/internal/apierror"
	"frenotaller/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrdenRepository interface {
	Create(ctx context.Context, o *model.OrdenTrabajo) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.OrdenTrabajo, error)
	List(ctx context.Context, search string) ([]model.OrdenTrabajo, error)
	Update(ctx context.Context, o *model.OrdenTrabajo) error
	Delete(ctx context.Context, id uuid.UUID) error
	// TotalesPorFecha returns the sum and count of orders entered on the
	// given calendar day.
	TotalesPorFecha(ctx context.Context, fecha time.Time) (decimal.Decimal, int64, error)
}

type ordenRepo struct{ db *gorm.DB }

func NewOrdenRepository(db *gorm.DB) OrdenRepository { return &ordenRepo{db: db} }

func (r *ordenRepo) Create(ctx context.Context, o *model.OrdenTrabajo) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *ordenRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.OrdenTrabajo, error) {
	var o model.OrdenTrabajo
	err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.ErrNoEncontrado
	}
	return &o, err
}

func (r *ordenRepo) List(ctx context.Context, search string) ([]model.OrdenTrabajo, error) {
	q := r.db.WithContext(ctx).Model(&model.OrdenTrabajo{})
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("patente ILIKE ? OR marca ILIKE ? OR modelo ILIKE ? OR mecanico ILIKE ?",
			like, like, like, like)
	}
	var ordenes []model.OrdenTrabajo
	err := q.Order("numero_ot DESC").Find(&ordenes).Error
	return ordenes, err
}

func (r *ordenRepo) Update(ctx context.Context, o *model.OrdenTrabajo) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *ordenRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.OrdenTrabajo{}, "id = ?", id).Error
}

func (r *ordenRepo) TotalesPorFecha(ctx context.Context, fecha time.Time) (decimal.Decimal, int64, error) {
	var row struct {
		Total    decimal.Decimal
		Cantidad int64
	}
	err := r.db.WithContext(ctx).Model(&model.OrdenTrabajo{}).
		Select("COALESCE(SUM(total), 0) AS total, COUNT(*) AS cantidad").
		Where("fecha_ingreso::date = ?::date", fecha).
		Scan(&row).Error
	return row.Total, row.Cantidad, err
}
