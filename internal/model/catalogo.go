package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Servicio is a salon service offered at a base price.
type Servicio struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Nombre      string          `gorm:"size:100;not null" json:"nombre"`
	Descripcion string          `json:"descripcion"`
	PrecioBase  decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"precioBase"`
	Activo      bool            `gorm:"not null;default:true" json:"activo"`
	CreatedAt   time.Time       `json:"-"`
	UpdatedAt   time.Time       `json:"-"`
}

func (Servicio) TableName() string { return "servicios" }

// Producto is a retail item sold over the counter.
type Producto struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Nombre      string          `gorm:"size:100;not null" json:"nombre"`
	Descripcion string          `json:"descripcion"`
	PrecioVenta decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"precioVenta"`
	Stock       int             `gorm:"not null;default:0" json:"stock"`
	Activo      bool            `gorm:"not null;default:true" json:"activo"`
	CreatedAt   time.Time       `json:"-"`
	UpdatedAt   time.Time       `json:"-"`
}

func (Producto) TableName() string { return "productos" }
