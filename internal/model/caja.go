package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una caja. La transición es monotónica: una caja cerrada
// no vuelve a abrirse.
const (
	CajaAbierta = "abierto"
	CajaCerrada = "cerrado"
)

// Caja represents one cash-drawer session spanning a single business day.
// Fecha and MontoInicial are immutable after creation; the three totals and
// MontoFinal are derived by the arqueo computation, never entered by hand.
type Caja struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Nombre string `gorm:"size:100;not null" json:"nombre"`
	// Fecha is the reconciliation unit, stored as YYYY-MM-DD.
	Fecha        string  `gorm:"type:date;not null;index" json:"fecha"`
	HoraApertura *string `gorm:"size:8" json:"horaApertura"`
	HoraCierre   *string `gorm:"size:8" json:"horaCierre"`

	MontoInicial decimal.Decimal  `gorm:"type:decimal(14,2);not null" json:"montoInicial"`
	MontoFinal   *decimal.Decimal `gorm:"type:decimal(14,2)" json:"montoFinal"`

	TotalServicios  decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"totalServicios"`
	TotalProductos  decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"totalProductos"`
	TotalDescuentos decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"totalDescuentos"`

	Estado string `gorm:"size:20;not null;default:'abierto'" json:"estado"`

	EmpleadoID *uint     `json:"empleadoId"`
	Empleado   *Empleado `gorm:"foreignKey:EmpleadoID" json:"empleado,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Caja) TableName() string { return "cajas" }
