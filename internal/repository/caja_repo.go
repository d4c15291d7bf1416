package repository

import (
	"context"

	"github.com/OvidioSandoval/peluqueria-sub000/internal/model"

	"gorm.io/gorm"
)

type CajaRepository interface {
	Create(ctx context.Context, c *model.Caja) error
	FindByID(ctx context.Context, id uint) (*model.Caja, error)
	ListAll(ctx context.Context) ([]model.Caja, error)
	ListAbiertas(ctx context.Context) ([]model.Caja, error)
	Update(ctx context.Context, c *model.Caja) error
	Delete(ctx context.Context, id uint) error
}

type cajaRepo struct{ db *gorm.DB }

func NewCajaRepository(db *gorm.DB) CajaRepository { return &cajaRepo{db: db} }

func (r *cajaRepo) Create(ctx context.Context, c *model.Caja) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cajaRepo) FindByID(ctx context.Context, id uint) (*model.Caja, error) {
	var c model.Caja
	err := r.db.WithContext(ctx).Preload("Empleado").First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cajaRepo) ListAll(ctx context.Context) ([]model.Caja, error) {
	var cajas []model.Caja
	err := r.db.WithContext(ctx).Preload("Empleado").Order("id ASC").Find(&cajas).Error
	return cajas, err
}

func (r *cajaRepo) ListAbiertas(ctx context.Context) ([]model.Caja, error) {
	var cajas []model.Caja
	err := r.db.WithContext(ctx).Where("estado = ?", model.CajaAbierta).Order("id ASC").Find(&cajas).Error
	return cajas, err
}

func (r *cajaRepo) Update(ctx context.Context, c *model.Caja) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *cajaRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Caja{}, id).Error
}
