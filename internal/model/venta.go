package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venta is a completed point-of-sale transaction. Ventas and their detalles
// are immutable once registered — the reconciliation path only ever reads them.
type Venta struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	FechaVenta        time.Time       `gorm:"not null;index" json:"fechaVenta"`
	CantidadArticulos int             `gorm:"not null" json:"cantidadArticulos"`
	MontoTotal        decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"montoTotal"`
	DescuentoAplicado decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"descuentoAplicado"`
	MetodoPago        string          `gorm:"size:50" json:"metodoPago"`
	Observaciones     *string         `gorm:"size:255" json:"observaciones"`

	ClienteID  *uint     `json:"clienteId"`
	Cliente    *Cliente  `gorm:"foreignKey:ClienteID" json:"cliente,omitempty"`
	EmpleadoID *uint     `json:"empleadoId"`
	Empleado   *Empleado `gorm:"foreignKey:EmpleadoID" json:"empleado,omitempty"`

	Detalles []DetalleVenta `gorm:"foreignKey:VentaID" json:"detalles,omitempty"`

	CreatedAt time.Time `json:"-"`
}

func (Venta) TableName() string { return "ventas" }

// Rubro tags a sale line as belonging to the service column or the product
// column of the register report. A line references exactly one of the two.
type Rubro int

const (
	RubroInvalido Rubro = iota
	RubroServicio
	RubroProducto
)

// DetalleVenta is one line of a Venta: a quantity of exactly one Servicio
// or exactly one Producto at a unit price frozen at sale time.
type DetalleVenta struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	VentaID uint `gorm:"not null;index" json:"ventaId"`

	ServicioID *uint     `json:"servicioId"`
	Servicio   *Servicio `gorm:"foreignKey:ServicioID" json:"servicio,omitempty"`
	ProductoID *uint     `json:"productoId"`
	Producto   *Producto `gorm:"foreignKey:ProductoID" json:"producto,omitempty"`

	Cantidad       int             `gorm:"not null" json:"cantidad"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"precioUnitario"`
}

func (DetalleVenta) TableName() string { return "detalle_venta" }

// Rubro resolves the tagged variant. Lines with both references set, or
// neither, are RubroInvalido and contribute to no total.
func (d DetalleVenta) Rubro() Rubro {
	switch {
	case d.ServicioID != nil && d.ProductoID == nil:
		return RubroServicio
	case d.ProductoID != nil && d.ServicioID == nil:
		return RubroProducto
	default:
		return RubroInvalido
	}
}

// Subtotal is the gross line amount: cantidad × precio unitario.
func (d DetalleVenta) Subtotal() decimal.Decimal {
	return d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad)))
}
