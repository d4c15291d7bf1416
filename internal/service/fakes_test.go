package service_test

// In-memory repository fakes shared by the service tests. They implement the
// repository interfaces over plain slices and maps so the services can be
// exercised without a database.

import (
	"context"
	"errors"

	"github.com/OvidioSandoval/peluqueria-sub000/internal/model"
	"github.com/OvidioSandoval/peluqueria-sub000/internal/repository"
)

// ── CajaRepository ───────────────────────────────────────────────────────────

type fakeCajaRepo struct {
	cajas  map[uint]*model.Caja
	nextID uint
}

func newFakeCajaRepo() *fakeCajaRepo {
	return &fakeCajaRepo{cajas: make(map[uint]*model.Caja), nextID: 1}
}

func (r *fakeCajaRepo) Create(_ context.Context, c *model.Caja) error {
	c.ID = r.nextID
	r.nextID++
	copia := *c
	r.cajas[c.ID] = &copia
	return nil
}

func (r *fakeCajaRepo) FindByID(_ context.Context, id uint) (*model.Caja, error) {
	c, ok := r.cajas[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	copia := *c
	return &copia, nil
}

func (r *fakeCajaRepo) ListAll(_ context.Context) ([]model.Caja, error) {
	var out []model.Caja
	for id := uint(1); id < r.nextID; id++ {
		if c, ok := r.cajas[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCajaRepo) ListAbiertas(_ context.Context) ([]model.Caja, error) {
	var out []model.Caja
	for id := uint(1); id < r.nextID; id++ {
		if c, ok := r.cajas[id]; ok && c.Estado == model.CajaAbierta {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCajaRepo) Update(_ context.Context, c *model.Caja) error {
	if _, ok := r.cajas[c.ID]; !ok {
		return errors.New("record not found")
	}
	copia := *c
	r.cajas[c.ID] = &copia
	return nil
}

func (r *fakeCajaRepo) Delete(_ context.Context, id uint) error {
	delete(r.cajas, id)
	return nil
}

var _ repository.CajaRepository = (*fakeCajaRepo)(nil)

// ── VentaRepository ──────────────────────────────────────────────────────────

type fakeVentaRepo struct {
	ventas      []model.Venta
	nextVentaID uint
	nextLineaID uint
	errListAll  error // injected failure for the fetch path
}

func newFakeVentaRepo() *fakeVentaRepo {
	return &fakeVentaRepo{nextVentaID: 1, nextLineaID: 1}
}

func (r *fakeVentaRepo) Create(_ context.Context, v *model.Venta) error {
	v.ID = r.nextVentaID
	r.nextVentaID++
	for i := range v.Detalles {
		v.Detalles[i].ID = r.nextLineaID
		v.Detalles[i].VentaID = v.ID
		r.nextLineaID++
	}
	r.ventas = append(r.ventas, *v)
	return nil
}

func (r *fakeVentaRepo) FindByID(_ context.Context, id uint) (*model.Venta, error) {
	for i := range r.ventas {
		if r.ventas[i].ID == id {
			copia := r.ventas[i]
			return &copia, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeVentaRepo) ListAll(_ context.Context) ([]model.Venta, error) {
	if r.errListAll != nil {
		return nil, r.errListAll
	}
	return append([]model.Venta(nil), r.ventas...), nil
}

func (r *fakeVentaRepo) ListAllDetalles(_ context.Context) ([]model.DetalleVenta, error) {
	var out []model.DetalleVenta
	for _, v := range r.ventas {
		out = append(out, v.Detalles...)
	}
	return out, nil
}

func (r *fakeVentaRepo) Delete(_ context.Context, id uint) error {
	for i := range r.ventas {
		if r.ventas[i].ID == id {
			r.ventas = append(r.ventas[:i], r.ventas[i+1:]...)
			return nil
		}
	}
	return errors.New("record not found")
}

var _ repository.VentaRepository = (*fakeVentaRepo)(nil)

// ── MovimientoRepository ─────────────────────────────────────────────────────

type fakeMovimientoRepo struct {
	movs   []model.Movimiento
	nextID uint
}

func newFakeMovimientoRepo() *fakeMovimientoRepo {
	return &fakeMovimientoRepo{nextID: 1}
}

func (r *fakeMovimientoRepo) Create(_ context.Context, m *model.Movimiento) error {
	m.ID = r.nextID
	r.nextID++
	r.movs = append(r.movs, *m)
	return nil
}

func (r *fakeMovimientoRepo) ListAll(_ context.Context) ([]model.Movimiento, error) {
	return append([]model.Movimiento(nil), r.movs...), nil
}

func (r *fakeMovimientoRepo) ListByCaja(_ context.Context, cajaID uint) ([]model.Movimiento, error) {
	var out []model.Movimiento
	for _, m := range r.movs {
		if m.CajaID == cajaID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovimientoRepo) Delete(_ context.Context, id uint) error {
	for i := range r.movs {
		if r.movs[i].ID == id {
			r.movs = append(r.movs[:i], r.movs[i+1:]...)
			return nil
		}
	}
	return errors.New("record not found")
}

var _ repository.MovimientoRepository = (*fakeMovimientoRepo)(nil)

// ── CatalogoRepository ───────────────────────────────────────────────────────

type fakeCatalogoRepo struct {
	servicios map[uint]*model.Servicio
	productos map[uint]*model.Producto
}

func newFakeCatalogoRepo() *fakeCatalogoRepo {
	return &fakeCatalogoRepo{
		servicios: make(map[uint]*model.Servicio),
		productos: make(map[uint]*model.Producto),
	}
}

func (r *fakeCatalogoRepo) CreateServicio(_ context.Context, s *model.Servicio) error {
	r.servicios[s.ID] = s
	return nil
}

func (r *fakeCatalogoRepo) FindServicioByID(_ context.Context, id uint) (*model.Servicio, error) {
	s, ok := r.servicios[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return s, nil
}

func (r *fakeCatalogoRepo) ListServicios(_ context.Context) ([]model.Servicio, error) {
	var out []model.Servicio
	for _, s := range r.servicios {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeCatalogoRepo) UpdateServicio(_ context.Context, s *model.Servicio) error {
	r.servicios[s.ID] = s
	return nil
}

func (r *fakeCatalogoRepo) DeleteServicio(_ context.Context, id uint) error {
	delete(r.servicios, id)
	return nil
}

func (r *fakeCatalogoRepo) CreateProducto(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *fakeCatalogoRepo) FindProductoByID(_ context.Context, id uint) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return p, nil
}

func (r *fakeCatalogoRepo) ListProductos(_ context.Context) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeCatalogoRepo) UpdateProducto(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *fakeCatalogoRepo) DeleteProducto(_ context.Context, id uint) error {
	delete(r.productos, id)
	return nil
}

var _ repository.CatalogoRepository = (*fakeCatalogoRepo)(nil)

// ── EmpleadoRepository ───────────────────────────────────────────────────────

type fakeEmpleadoRepo struct {
	empleados map[uint]*model.Empleado
}

func newFakeEmpleadoRepo() *fakeEmpleadoRepo {
	return &fakeEmpleadoRepo{empleados: make(map[uint]*model.Empleado)}
}

func (r *fakeEmpleadoRepo) Create(_ context.Context, e *model.Empleado) error {
	r.empleados[e.ID] = e
	return nil
}

func (r *fakeEmpleadoRepo) FindByID(_ context.Context, id uint) (*model.Empleado, error) {
	e, ok := r.empleados[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return e, nil
}

func (r *fakeEmpleadoRepo) ListAll(_ context.Context) ([]model.Empleado, error) {
	var out []model.Empleado
	for _, e := range r.empleados {
		out = append(out, *e)
	}
	return out, nil
}

func (r *fakeEmpleadoRepo) Update(_ context.Context, e *model.Empleado) error {
	r.empleados[e.ID] = e
	return nil
}

func (r *fakeEmpleadoRepo) Delete(_ context.Context, id uint) error {
	delete(r.empleados, id)
	return nil
}

var _ repository.EmpleadoRepository = (*fakeEmpleadoRepo)(nil)
