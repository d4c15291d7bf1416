package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearCajaRequest struct {
	Nombre       string          `json:"nombre"       validate:"required"`
	Fecha        string          `json:"fecha"        validate:"required,datetime=2006-01-02"`
	HoraApertura *string         `json:"horaApertura"`
	MontoInicial decimal.Decimal `json:"montoInicial" validate:"required,min=0"`
	EmpleadoID   *uint           `json:"empleadoId"`
}

// ActualizarCajaRequest deliberately omits fecha and montoInicial: both are
// immutable once the register exists.
type ActualizarCajaRequest struct {
	Nombre     string  `json:"nombre"     validate:"required"`
	Estado     string  `json:"estado"     validate:"required,oneof=abierto cerrado"`
	HoraCierre *string `json:"horaCierre"`
	EmpleadoID *uint   `json:"empleadoId"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ReporteCajaResponse struct {
	CajaID          uint            `json:"cajaId"`
	Nombre          string          `json:"nombre"`
	Fecha           string          `json:"fecha"`
	Estado          string          `json:"estado"`
	MontoInicial    decimal.Decimal `json:"montoInicial"`
	TotalServicios  decimal.Decimal `json:"totalServicios"`
	TotalProductos  decimal.Decimal `json:"totalProductos"`
	TotalDescuentos decimal.Decimal `json:"totalDescuentos"`
	MontoFinal      decimal.Decimal `json:"montoFinal"`
}
