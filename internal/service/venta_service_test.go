package service_test

import (
	"context"
	"testing"

	"github.com/OvidioSandoval/peluqueria-sub000/internal/dto"
	"github.com/OvidioSandoval/peluqueria-sub000/internal/model"
	"github.com/OvidioSandoval/peluqueria-sub000/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVentaServiceParaTest() (service.VentaService, *fakeVentaRepo, *fakeCatalogoRepo) {
	ventaRepo := newFakeVentaRepo()
	catalogo := newFakeCatalogoRepo()

	catalogo.servicios[1] = &model.Servicio{ID: 1, Nombre: "Corte", PrecioBase: dec(8000), Activo: true}
	catalogo.servicios[2] = &model.Servicio{ID: 2, Nombre: "Tintura", PrecioBase: dec(15000), Activo: false}
	catalogo.productos[1] = &model.Producto{ID: 1, Nombre: "Shampoo", PrecioVenta: dec(3500), Stock: 10, Activo: true}

	return service.NewVentaService(ventaRepo, catalogo), ventaRepo, catalogo
}

func TestRegistrarVentaCongelaPrecios(t *testing.T) {
	ctx := context.Background()
	svc, repo, catalogo := newVentaServiceParaTest()

	resp, err := svc.Registrar(ctx, dto.RegistrarVentaRequest{
		Detalles: []dto.DetalleVentaRequest{
			{ServicioID: uintPtr(1), Cantidad: 2},
			{ProductoID: uintPtr(1), Cantidad: 1},
		},
		MetodoPago: "efectivo",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.CantidadArticulos)
	assert.Equal(t, "19500", resp.MontoTotal.String())
	require.Len(t, resp.Detalles, 2)
	assert.Equal(t, "Corte", resp.Detalles[0].Descripcion)
	assert.Equal(t, "servicio", resp.Detalles[0].Rubro)
	assert.Equal(t, "16000", resp.Detalles[0].Subtotal.String())
	assert.Equal(t, "producto", resp.Detalles[1].Rubro)

	// A later price change does not rewrite the stored line.
	catalogo.servicios[1].PrecioBase = dec(99999)
	guardada, err := repo.FindByID(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "8000", guardada.Detalles[0].PrecioUnitario.String())
}

func TestRegistrarVentaLineaAmbigua(t *testing.T) {
	svc, _, _ := newVentaServiceParaTest()

	_, err := svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		Detalles: []dto.DetalleVentaRequest{
			{ServicioID: uintPtr(1), ProductoID: uintPtr(1), Cantidad: 1},
		},
		MetodoPago: "efectivo",
	})
	assert.ErrorContains(t, err, "exactamente un servicio o un producto")

	_, err = svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		Detalles:   []dto.DetalleVentaRequest{{Cantidad: 1}},
		MetodoPago: "efectivo",
	})
	assert.ErrorContains(t, err, "exactamente un servicio o un producto")
}

func TestRegistrarVentaServicioInactivo(t *testing.T) {
	svc, _, _ := newVentaServiceParaTest()

	_, err := svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		Detalles:   []dto.DetalleVentaRequest{{ServicioID: uintPtr(2), Cantidad: 1}},
		MetodoPago: "efectivo",
	})
	assert.ErrorContains(t, err, "inactivo")
}

func TestRegistrarVentaReferenciaInexistente(t *testing.T) {
	svc, _, _ := newVentaServiceParaTest()

	_, err := svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		Detalles:   []dto.DetalleVentaRequest{{ProductoID: uintPtr(77), Cantidad: 1}},
		MetodoPago: "efectivo",
	})
	assert.ErrorContains(t, err, "no encontrado")
}

func TestRegistrarVentaDescuentoExcesivo(t *testing.T) {
	svc, _, _ := newVentaServiceParaTest()

	_, err := svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		Detalles:          []dto.DetalleVentaRequest{{ServicioID: uintPtr(1), Cantidad: 1}},
		DescuentoAplicado: dec(8001),
		MetodoPago:        "efectivo",
	})
	assert.ErrorContains(t, err, "descuento supera")
}

func TestRegistrarVentaAplicaDescuento(t *testing.T) {
	svc, _, _ := newVentaServiceParaTest()

	resp, err := svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		Detalles:          []dto.DetalleVentaRequest{{ServicioID: uintPtr(1), Cantidad: 1}},
		DescuentoAplicado: dec(500),
		MetodoPago:        "tarjeta",
	})
	require.NoError(t, err)
	assert.Equal(t, "7500", resp.MontoTotal.String())
	assert.Equal(t, "500", resp.DescuentoAplicado.String())
}

func TestRegistrarVentaFechaInvalida(t *testing.T) {
	svc, _, _ := newVentaServiceParaTest()

	_, err := svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		FechaVenta: "15/03/2024",
		Detalles:   []dto.DetalleVentaRequest{{ServicioID: uintPtr(1), Cantidad: 1}},
		MetodoPago: "efectivo",
	})
	assert.ErrorContains(t, err, "fechaVenta invalida")
}
