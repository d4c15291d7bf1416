package repository

import (
	"context"

	"github.com/OvidioSandoval/peluqueria-sub000/internal/model"

	"gorm.io/gorm"
)

// Movimientos are append-only: no Update method exists on the interface.
type MovimientoRepository interface {
	Create(ctx context.Context, m *model.Movimiento) error
	ListAll(ctx context.Context) ([]model.Movimiento, error)
	ListByCaja(ctx context.Context, cajaID uint) ([]model.Movimiento, error)
	Delete(ctx context.Context, id uint) error
}

type movimientoRepo struct{ db *gorm.DB }

func NewMovimientoRepository(db *gorm.DB) MovimientoRepository {
	return &movimientoRepo{db: db}
}

func (r *movimientoRepo) Create(ctx context.Context, m *model.Movimiento) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *movimientoRepo) ListAll(ctx context.Context) ([]model.Movimiento, error) {
	var movs []model.Movimiento
	err := r.db.WithContext(ctx).Order("id ASC").Find(&movs).Error
	return movs, err
}

func (r *movimientoRepo) ListByCaja(ctx context.Context, cajaID uint) ([]model.Movimiento, error) {
	var movs []model.Movimiento
	err := r.db.WithContext(ctx).Where("caja_id = ?", cajaID).Order("fecha ASC").Find(&movs).Error
	return movs, err
}

func (r *movimientoRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Movimiento{}, id).Error
}
