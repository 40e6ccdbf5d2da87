package repository

import (
	"context"

	"frenotaller/internal/model"

	"gorm.io/gorm"
)

type CompraRepository interface {
	Create(ctx context.Context, c *model.Compra) error
	List(ctx context.Context) ([]model.Compra, error)
}

type compraRepo struct{ db *gorm.DB }

func NewCompraRepository(db *gorm.DB) CompraRepository { return &compraRepo{db: db} }

func (r *compraRepo) Create(ctx context.Context, c *model.Compra) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *compraRepo) List(ctx context.Context) ([]model.Compra, error) {
	var compras []model.Compra
	err := r.db.WithContext(ctx).Order("fecha DESC").Find(&compras).Error
	return compras, err
}
