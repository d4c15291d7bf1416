package model

import "time"

// Empleado can be associated to a Caja (who opened the drawer) and to Ventas.
type Empleado struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	NombreCompleto string    `gorm:"size:150;not null" json:"nombreCompleto"`
	Telefono       string    `gorm:"size:30" json:"telefono"`
	Email          *string   `gorm:"size:120" json:"email"`
	Activo         bool      `gorm:"not null;default:true" json:"activo"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
}

func (Empleado) TableName() string { return "empleados" }

// Cliente is an optional association on a Venta.
type Cliente struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	NombreCompleto string    `gorm:"size:150;not null" json:"nombreCompleto"`
	Telefono       string    `gorm:"size:30" json:"telefono"`
	Email          *string   `gorm:"size:120" json:"email"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
}

func (Cliente) TableName() string { return "clientes" }
