package repository

import (
	"context"

	"github.com/OvidioSandoval/peluqueria-sub000/internal/model"

	"gorm.io/gorm"
)

// CatalogoRepository covers the two entities a sale line can reference.
type CatalogoRepository interface {
	CreateServicio(ctx context.Context, s *model.Servicio) error
	FindServicioByID(ctx context.Context, id uint) (*model.Servicio, error)
	ListServicios(ctx context.Context) ([]model.Servicio, error)
	UpdateServicio(ctx context.Context, s *model.Servicio) error
	DeleteServicio(ctx context.Context, id uint) error

	CreateProducto(ctx context.Context, p *model.Producto) error
	FindProductoByID(ctx context.Context, id uint) (*model.Producto, error)
	ListProductos(ctx context.Context) ([]model.Producto, error)
	UpdateProducto(ctx context.Context, p *model.Producto) error
	DeleteProducto(ctx context.Context, id uint) error
}

type catalogoRepo struct{ db *gorm.DB }

func NewCatalogoRepository(db *gorm.DB) CatalogoRepository { return &catalogoRepo{db: db} }

func (r *catalogoRepo) CreateServicio(ctx context.Context, s *model.Servicio) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *catalogoRepo) FindServicioByID(ctx context.Context, id uint) (*model.Servicio, error) {
	var s model.Servicio
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *catalogoRepo) ListServicios(ctx context.Context) ([]model.Servicio, error) {
	var servicios []model.Servicio
	err := r.db.WithContext(ctx).Order("id ASC").Find(&servicios).Error
	return servicios, err
}

func (r *catalogoRepo) UpdateServicio(ctx context.Context, s *model.Servicio) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *catalogoRepo) DeleteServicio(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Servicio{}, id).Error
}

func (r *catalogoRepo) CreateProducto(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *catalogoRepo) FindProductoByID(ctx context.Context, id uint) (*model.Producto, error) {
	var p model.Producto
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *catalogoRepo) ListProductos(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).Order("id ASC").Find(&productos).Error
	return productos, err
}

func (r *catalogoRepo) UpdateProducto(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *catalogoRepo) DeleteProducto(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Producto{}, id).Error
}
