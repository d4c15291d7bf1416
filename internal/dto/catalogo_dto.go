package dto

import "github.com/shopspring/decimal"

type ServicioRequest struct {
	Nombre      string          `json:"nombre"      validate:"required"`
	Descripcion string          `json:"descripcion"`
	PrecioBase  decimal.Decimal `json:"precioBase"  validate:"required,min=0"`
	Activo      *bool           `json:"activo"`
}

type ProductoRequest struct {
	Nombre      string          `json:"nombre"      validate:"required"`
	Descripcion string          `json:"descripcion"`
	PrecioVenta decimal.Decimal `json:"precioVenta" validate:"required,min=0"`
	Stock       int             `json:"stock"       validate:"min=0"`
	Activo      *bool           `json:"activo"`
}

type PersonaRequest struct {
	NombreCompleto string  `json:"nombreCompleto" validate:"required"`
	Telefono       string  `json:"telefono"`
	Email          *string `json:"email" validate:"omitempty,email"`
}
