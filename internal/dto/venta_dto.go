package dto

import "github.com/shopspring/decimal"

// DetalleVentaRequest references exactly one servicio or one producto.
// The XOR check lives in the service layer; validator cannot express it.
type DetalleVentaRequest struct {
	ServicioID *uint `json:"servicioId"`
	ProductoID *uint `json:"productoId"`
	Cantidad   int   `json:"cantidad" validate:"required,min=1"`
}

type RegistrarVentaRequest struct {
	// FechaVenta is RFC 3339; empty means now.
	FechaVenta        string                `json:"fechaVenta"        validate:"omitempty"`
	Detalles          []DetalleVentaRequest `json:"detalles"          validate:"required,min=1,dive"`
	DescuentoAplicado decimal.Decimal       `json:"descuentoAplicado" validate:"min=0"`
	MetodoPago        string                `json:"metodoPago"        validate:"required,oneof=efectivo tarjeta transferencia"`
	ClienteID         *uint                 `json:"clienteId"`
	EmpleadoID        *uint                 `json:"empleadoId"`
	Observaciones     *string               `json:"observaciones"`
}

type DetalleVentaResponse struct {
	Descripcion    string          `json:"descripcion"`
	Rubro          string          `json:"rubro"` // servicio | producto
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type VentaResponse struct {
	ID                uint                   `json:"id"`
	FechaVenta        string                 `json:"fechaVenta"`
	CantidadArticulos int                    `json:"cantidadArticulos"`
	MontoTotal        decimal.Decimal        `json:"montoTotal"`
	DescuentoAplicado decimal.Decimal        `json:"descuentoAplicado"`
	MetodoPago        string                 `json:"metodoPago"`
	Detalles          []DetalleVentaResponse `json:"detalles"`
}
