package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/OvidioSandoval/peluqueria-sub000/internal/dto"
	"github.com/OvidioSandoval/peluqueria-sub000/internal/model"
	"github.com/OvidioSandoval/peluqueria-sub000/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// arqueoRoto always fails, standing in for an unreachable store.
type arqueoRoto struct{}

func (arqueoRoto) CalcularCaja(context.Context, *model.Caja) (service.TotalesCaja, error) {
	return service.TotalesCaja{}, errors.New("sin conexion")
}

func (arqueoRoto) RecalcularCaja(context.Context, uint) (*model.Caja, error) {
	return nil, errors.New("sin conexion")
}

func (arqueoRoto) RecalcularAbiertas(context.Context) (int, error) {
	return 0, errors.New("sin conexion")
}

func newCajaServiceParaTest() (service.CajaService, *fakeCajaRepo, *fakeEmpleadoRepo) {
	cajaRepo := newFakeCajaRepo()
	empleadoRepo := newFakeEmpleadoRepo()
	arqueo := service.NewArqueoService(cajaRepo, newFakeVentaRepo(), newFakeMovimientoRepo(), false)
	return service.NewCajaService(cajaRepo, empleadoRepo, arqueo), cajaRepo, empleadoRepo
}

func TestCrearCajaAbiertaConDefaults(t *testing.T) {
	svc, _, _ := newCajaServiceParaTest()

	caja, err := svc.Crear(context.Background(), dto.CrearCajaRequest{
		Nombre:       "Caja principal",
		Fecha:        "2024-03-15",
		MontoInicial: dec(50000),
	})
	require.NoError(t, err)

	assert.Equal(t, model.CajaAbierta, caja.Estado)
	require.NotNil(t, caja.HoraApertura)
	assert.NotEmpty(t, *caja.HoraApertura)
	assert.Nil(t, caja.HoraCierre)
	assert.Nil(t, caja.MontoFinal)
	assert.True(t, caja.TotalServicios.IsZero())
}

func TestCrearCajaEmpleadoInexistente(t *testing.T) {
	svc, _, _ := newCajaServiceParaTest()

	_, err := svc.Crear(context.Background(), dto.CrearCajaRequest{
		Nombre:       "Caja",
		Fecha:        "2024-03-15",
		MontoInicial: dec(1000),
		EmpleadoID:   uintPtr(42),
	})
	assert.ErrorContains(t, err, "empleado no encontrado")
}

func TestCerrarCajaAsignaHoraCierre(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newCajaServiceParaTest()

	caja, err := svc.Crear(ctx, dto.CrearCajaRequest{
		Nombre: "Caja", Fecha: "2024-03-15", MontoInicial: dec(1000),
	})
	require.NoError(t, err)

	cerrada, err := svc.Actualizar(ctx, caja.ID, dto.ActualizarCajaRequest{
		Nombre: "Caja",
		Estado: model.CajaCerrada,
	})
	require.NoError(t, err)

	assert.Equal(t, model.CajaCerrada, cerrada.Estado)
	require.NotNil(t, cerrada.HoraCierre)
	assert.NotEmpty(t, *cerrada.HoraCierre)
	// Closing runs the reconciliation and persists the closing balance.
	require.NotNil(t, cerrada.MontoFinal)
	assert.Equal(t, "1000", cerrada.MontoFinal.String())
}

func TestCajaCerradaNoReabre(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newCajaServiceParaTest()

	caja, err := svc.Crear(ctx, dto.CrearCajaRequest{
		Nombre: "Caja", Fecha: "2024-03-15", MontoInicial: dec(1000),
	})
	require.NoError(t, err)

	_, err = svc.Actualizar(ctx, caja.ID, dto.ActualizarCajaRequest{Nombre: "Caja", Estado: model.CajaCerrada})
	require.NoError(t, err)

	_, err = svc.Actualizar(ctx, caja.ID, dto.ActualizarCajaRequest{Nombre: "Caja", Estado: model.CajaAbierta})
	assert.ErrorContains(t, err, "no puede reabrirse")
}

func TestActualizarNoTocaFechaNiMontoInicial(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newCajaServiceParaTest()

	caja, err := svc.Crear(ctx, dto.CrearCajaRequest{
		Nombre: "Original", Fecha: "2024-03-15", MontoInicial: dec(5000),
	})
	require.NoError(t, err)

	_, err = svc.Actualizar(ctx, caja.ID, dto.ActualizarCajaRequest{Nombre: "Renombrada", Estado: model.CajaAbierta})
	require.NoError(t, err)

	guardada, err := repo.FindByID(ctx, caja.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renombrada", guardada.Nombre)
	assert.Equal(t, "2024-03-15", guardada.Fecha)
	assert.Equal(t, "5000", guardada.MontoInicial.String())
}

func TestActualizarConservaTotalesSiElArqueoFalla(t *testing.T) {
	ctx := context.Background()
	cajaRepo := newFakeCajaRepo()
	svc := service.NewCajaService(cajaRepo, newFakeEmpleadoRepo(), arqueoRoto{})

	caja := &model.Caja{Nombre: "Caja", Fecha: "2024-03-15", MontoInicial: dec(1000), Estado: model.CajaAbierta, TotalServicios: dec(700)}
	require.NoError(t, cajaRepo.Create(ctx, caja))

	actualizada, err := svc.Actualizar(ctx, caja.ID, dto.ActualizarCajaRequest{Nombre: "Caja", Estado: model.CajaAbierta})
	require.NoError(t, err)

	// The edit lands but the stale totals survive instead of being zeroed.
	assert.Equal(t, "700", actualizada.TotalServicios.String())
}

func TestReporteNoPersiste(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newCajaServiceParaTest()

	caja, err := svc.Crear(ctx, dto.CrearCajaRequest{
		Nombre: "Caja", Fecha: "2024-03-15", MontoInicial: dec(2500),
	})
	require.NoError(t, err)

	reporte, err := svc.Reporte(ctx, caja.ID)
	require.NoError(t, err)
	assert.Equal(t, "2500", reporte.MontoFinal.String())

	guardada, err := repo.FindByID(ctx, caja.ID)
	require.NoError(t, err)
	assert.Nil(t, guardada.MontoFinal)
}

func TestEliminarCajaInexistente(t *testing.T) {
	svc, _, _ := newCajaServiceParaTest()
	err := svc.Eliminar(context.Background(), 7)
	assert.ErrorContains(t, err, "caja no encontrada")
}
