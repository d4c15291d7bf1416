package dto

import "github.com/shopspring/decimal"

// RegistrarMovimientoRequest creates an immutable cash adjustment. Monto is
// always the positive magnitude; Tipo decides the sign during reconciliation.
type RegistrarMovimientoRequest struct {
	CajaID      uint            `json:"cajaId"      validate:"required"`
	Fecha       string          `json:"fecha"       validate:"omitempty"` // RFC 3339; empty = now
	Monto       decimal.Decimal `json:"monto"       validate:"required,gt=0"`
	Tipo        string          `json:"tipo"        validate:"required,oneof=ingreso egreso"`
	Descripcion string          `json:"descripcion" validate:"required,min=3"`
}
