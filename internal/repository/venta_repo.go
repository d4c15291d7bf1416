package repository

import (
	"context"

	"github.com/OvidioSandoval/peluqueria-sub000/internal/model"

	"gorm.io/gorm"
)

type VentaRepository interface {
	Create(ctx context.Context, v *model.Venta) error
	FindByID(ctx context.Context, id uint) (*model.Venta, error)
	ListAll(ctx context.Context) ([]model.Venta, error)
	ListAllDetalles(ctx context.Context) ([]model.DetalleVenta, error)
	Delete(ctx context.Context, id uint) error
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) Create(ctx context.Context, v *model.Venta) error {
	// Detalles are persisted in the same insert via the association.
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *ventaRepo) FindByID(ctx context.Context, id uint) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).
		Preload("Detalles").
		Preload("Detalles.Servicio").
		Preload("Detalles.Producto").
		Preload("Cliente").
		Preload("Empleado").
		First(&v, id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *ventaRepo) ListAll(ctx context.Context) ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.WithContext(ctx).Preload("Detalles").Order("id ASC").Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) ListAllDetalles(ctx context.Context) ([]model.DetalleVenta, error) {
	var detalles []model.DetalleVenta
	err := r.db.WithContext(ctx).Order("id ASC").Find(&detalles).Error
	return detalles, err
}

func (r *ventaRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Select("Detalles").Delete(&model.Venta{ID: id}).Error
}
