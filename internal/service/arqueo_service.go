package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/OvidioSandoval/peluqueria-sub000/internal/model"
	"github.com/OvidioSandoval/peluqueria-sub000/internal/repository"

	"github.com/shopspring/decimal"
)

// ErrEntradaInvalida is returned when the target register lacks a usable
// date or id. Totals stay at zero; the caller decides whether to surface it.
var ErrEntradaInvalida = errors.New("entrada de arqueo invalida")

// EntradaArqueo identifies the register being reconciled.
type EntradaArqueo struct {
	CajaID       uint
	Fecha        string // YYYY-MM-DD, the register's immutable day
	MontoInicial decimal.Decimal
	// DescontarDescuentos switches MontoFinal to also subtract
	// TotalDescuentos. Historically discounts were reported but never
	// subtracted; keep false unless the domain confirms the alternate formula.
	DescontarDescuentos bool
}

// TotalesCaja holds the four derived fields of a register report.
type TotalesCaja struct {
	TotalServicios  decimal.Decimal `json:"totalServicios"`
	TotalProductos  decimal.Decimal `json:"totalProductos"`
	TotalDescuentos decimal.Decimal `json:"totalDescuentos"`
	MontoFinal      decimal.Decimal `json:"montoFinal"`
}

// mismoDiaCalendario reports whether the timestamp falls on the given
// calendar day. The match is a deliberate ISO-8601 prefix comparison: it
// accepts any time-of-day suffix and ignores it. Tighten here, not in the
// aggregation, if the rule ever changes.
func mismoDiaCalendario(ts time.Time, fecha string) bool {
	return strings.HasPrefix(ts.Format(time.RFC3339), fecha)
}

// CalcularTotales computes a register's derived totals from the full
// collections of sales, sale lines, and cash movements. It performs no I/O
// and is idempotent: identical inputs always produce identical totals.
//
//  1. Select every Venta whose FechaVenta falls on the register's day.
//  2. Select every DetalleVenta owned by a selected Venta.
//  3. Sum cantidad × precio unitario per Rubro (servicio / producto);
//     sum DescuentoAplicado over the selected Ventas.
//  4. Select movements on the same day for this register only.
//  5. Movements add when tipo == ingreso and subtract otherwise.
//  6. MontoFinal = inicial + servicios + productos + movimientos.
func CalcularTotales(entrada EntradaArqueo, ventas []model.Venta, detalles []model.DetalleVenta, movimientos []model.Movimiento) (TotalesCaja, error) {
	totales := TotalesCaja{
		TotalServicios:  decimal.Zero,
		TotalProductos:  decimal.Zero,
		TotalDescuentos: decimal.Zero,
		MontoFinal:      decimal.Zero,
	}

	if entrada.CajaID == 0 {
		return totales, fmt.Errorf("%w: falta id de caja", ErrEntradaInvalida)
	}
	if _, err := time.Parse("2006-01-02", entrada.Fecha); err != nil {
		return totales, fmt.Errorf("%w: fecha %q: %v", ErrEntradaInvalida, entrada.Fecha, err)
	}

	ventasDelDia := make(map[uint]bool)
	for _, v := range ventas {
		if !mismoDiaCalendario(v.FechaVenta, entrada.Fecha) {
			continue
		}
		ventasDelDia[v.ID] = true
		totales.TotalDescuentos = totales.TotalDescuentos.Add(v.DescuentoAplicado)
	}

	for _, d := range detalles {
		if !ventasDelDia[d.VentaID] {
			continue
		}
		switch d.Rubro() {
		case model.RubroServicio:
			totales.TotalServicios = totales.TotalServicios.Add(d.Subtotal())
		case model.RubroProducto:
			totales.TotalProductos = totales.TotalProductos.Add(d.Subtotal())
		}
	}

	totalMovimientos := decimal.Zero
	for _, m := range movimientos {
		if m.CajaID != entrada.CajaID || !mismoDiaCalendario(m.Fecha, entrada.Fecha) {
			continue
		}
		if m.Tipo == model.MovimientoIngreso {
			totalMovimientos = totalMovimientos.Add(m.Monto)
		} else {
			totalMovimientos = totalMovimientos.Sub(m.Monto)
		}
	}

	totales.MontoFinal = entrada.MontoInicial.
		Add(totales.TotalServicios).
		Add(totales.TotalProductos).
		Add(totalMovimientos)
	if entrada.DescontarDescuentos {
		totales.MontoFinal = totales.MontoFinal.Sub(totales.TotalDescuentos)
	}

	return totales, nil
}

// ArqueoService runs the reconciliation against live data: it fetches the
// three collections, applies CalcularTotales, and merges the result back
// into the Caja. The fetches stay out of the pure computation so the math
// is testable without a store.
type ArqueoService interface {
	CalcularCaja(ctx context.Context, caja *model.Caja) (TotalesCaja, error)
	RecalcularCaja(ctx context.Context, cajaID uint) (*model.Caja, error)
	// RecalcularAbiertas refreshes every open register. A failure on one
	// register does not stop the rest; previous totals stay untouched.
	RecalcularAbiertas(ctx context.Context) (int, error)
}

type arqueoService struct {
	cajaRepo            repository.CajaRepository
	ventaRepo           repository.VentaRepository
	movimientoRepo      repository.MovimientoRepository
	descontarDescuentos bool
}

func NewArqueoService(
	cajaRepo repository.CajaRepository,
	ventaRepo repository.VentaRepository,
	movimientoRepo repository.MovimientoRepository,
	descontarDescuentos bool,
) ArqueoService {
	return &arqueoService{
		cajaRepo:            cajaRepo,
		ventaRepo:           ventaRepo,
		movimientoRepo:      movimientoRepo,
		descontarDescuentos: descontarDescuentos,
	}
}

func (s *arqueoService) CalcularCaja(ctx context.Context, caja *model.Caja) (TotalesCaja, error) {
	ventas, err := s.ventaRepo.ListAll(ctx)
	if err != nil {
		return TotalesCaja{}, fmt.Errorf("arqueo: listar ventas: %w", err)
	}
	detalles, err := s.ventaRepo.ListAllDetalles(ctx)
	if err != nil {
		return TotalesCaja{}, fmt.Errorf("arqueo: listar detalle de ventas: %w", err)
	}
	movimientos, err := s.movimientoRepo.ListAll(ctx)
	if err != nil {
		return TotalesCaja{}, fmt.Errorf("arqueo: listar movimientos: %w", err)
	}

	entrada := EntradaArqueo{
		CajaID:              caja.ID,
		Fecha:               caja.Fecha,
		MontoInicial:        caja.MontoInicial,
		DescontarDescuentos: s.descontarDescuentos,
	}
	return CalcularTotales(entrada, ventas, detalles, movimientos)
}

func (s *arqueoService) RecalcularCaja(ctx context.Context, cajaID uint) (*model.Caja, error) {
	caja, err := s.cajaRepo.FindByID(ctx, cajaID)
	if err != nil {
		return nil, errors.New("caja no encontrada")
	}

	totales, err := s.CalcularCaja(ctx, caja)
	if err != nil {
		return nil, err
	}

	caja.TotalServicios = totales.TotalServicios
	caja.TotalProductos = totales.TotalProductos
	caja.TotalDescuentos = totales.TotalDescuentos
	montoFinal := totales.MontoFinal
	caja.MontoFinal = &montoFinal

	if err := s.cajaRepo.Update(ctx, caja); err != nil {
		return nil, fmt.Errorf("arqueo: actualizar caja %d: %w", cajaID, err)
	}
	return caja, nil
}

func (s *arqueoService) RecalcularAbiertas(ctx context.Context) (int, error) {
	abiertas, err := s.cajaRepo.ListAbiertas(ctx)
	if err != nil {
		return 0, fmt.Errorf("arqueo: listar cajas abiertas: %w", err)
	}

	actualizadas := 0
	var errs []error
	for _, caja := range abiertas {
		if _, err := s.RecalcularCaja(ctx, caja.ID); err != nil {
			errs = append(errs, fmt.Errorf("caja %d: %w", caja.ID, err))
			continue
		}
		actualizadas++
	}
	return actualizadas, errors.Join(errs...)
}
