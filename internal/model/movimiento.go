package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento. Monto always stores the non-negative magnitude;
// the sign is applied during aggregation according to Tipo.
const (
	MovimientoIngreso = "ingreso"
	MovimientoEgreso  = "egreso"
)

// Movimiento is a manual cash adjustment outside of normal sales
// (petty cash withdrawal, change fund top-up). It references its Caja but
// the Caja does not own its lifecycle — movements survive register edits.
type Movimiento struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	CajaID      uint            `gorm:"not null;index" json:"cajaId"`
	Fecha       time.Time       `gorm:"not null;index" json:"fecha"`
	Monto       decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"monto"`
	Tipo        string          `gorm:"size:20;not null" json:"tipo"`
	Descripcion string          `json:"descripcion"`
	CreatedAt   time.Time       `json:"-"`
}

func (Movimiento) TableName() string { return "movimientos_caja" }
