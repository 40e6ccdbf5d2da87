package repository

import (
	"context"
	"time"

	"frenotaller/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VentaRepository interface {
	Create(ctx context.Context, v *model.VentaMostrador) error
	// List filters by movement type when tipo is non-empty.
	List(ctx context.Context, tipo string) ([]model.VentaMostrador, error)
	// TotalesPorFecha sums only VENTA movements for the given calendar day;
	// losses and internal use never count as cash income.
	TotalesPorFecha(ctx context.Context, fecha time.Time) (decimal.Decimal, int64, error)
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) Create(ctx context.Context, v *model.VentaMostrador) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *ventaRepo) List(ctx context.Context, tipo string) ([]model.VentaMostrador, error) {
	q := r.db.WithContext(ctx).Model(&model.VentaMostrador{})
	if tipo != "" {
		q = q.Where("tipo_movimiento = ?", tipo)
	}
	var ventas []model.VentaMostrador
	err := q.Order("fecha DESC").Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) TotalesPorFecha(ctx context.Context, fecha time.Time) (decimal.Decimal, int64, error) {
	var row struct {
		Total    decimal.Decimal
		Cantidad int64
	}
	err := r.db.WithContext(ctx).Model(&model.VentaMostrador{}).
		Select("COALESCE(SUM(total_venta), 0) AS total, COUNT(*) AS cantidad").
		Where("fecha::date = ?::date AND tipo_movimiento = ?", fecha, model.MovimientoVenta).
		Scan(&row).Error
	return row.Total, row.Cantidad, err
}
