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

func TestRegistrarMovimientoRequiereCaja(t *testing.T) {
	svc := service.NewMovimientoService(newFakeMovimientoRepo(), newFakeCajaRepo())

	_, err := svc.Registrar(context.Background(), dto.RegistrarMovimientoRequest{
		CajaID: 9, Monto: dec(500), Tipo: model.MovimientoIngreso, Descripcion: "Fondo de cambio",
	})
	assert.ErrorContains(t, err, "caja no encontrada")
}

func TestRegistrarMovimientoConFechaExplicita(t *testing.T) {
	ctx := context.Background()
	cajaRepo := newFakeCajaRepo()
	movRepo := newFakeMovimientoRepo()
	svc := service.NewMovimientoService(movRepo, cajaRepo)

	caja := &model.Caja{Nombre: "Caja", Fecha: "2024-03-15", MontoInicial: dec(0), Estado: model.CajaAbierta}
	require.NoError(t, cajaRepo.Create(ctx, caja))

	mov, err := svc.Registrar(ctx, dto.RegistrarMovimientoRequest{
		CajaID:      caja.ID,
		Fecha:       "2024-03-15T14:30:00Z",
		Monto:       dec(3000),
		Tipo:        model.MovimientoEgreso,
		Descripcion: "Retiro parcial",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", mov.Fecha.Format("2006-01-02"))

	porCaja, err := svc.ListarPorCaja(ctx, caja.ID)
	require.NoError(t, err)
	require.Len(t, porCaja, 1)
	assert.Equal(t, "3000", porCaja[0].Monto.String())
}

func TestRegistrarMovimientoFechaInvalida(t *testing.T) {
	ctx := context.Background()
	cajaRepo := newFakeCajaRepo()
	svc := service.NewMovimientoService(newFakeMovimientoRepo(), cajaRepo)

	caja := &model.Caja{Nombre: "Caja", Fecha: "2024-03-15", MontoInicial: dec(0), Estado: model.CajaAbierta}
	require.NoError(t, cajaRepo.Create(ctx, caja))

	_, err := svc.Registrar(ctx, dto.RegistrarMovimientoRequest{
		CajaID: caja.ID, Fecha: "ayer", Monto: dec(100), Tipo: model.MovimientoIngreso, Descripcion: "Prueba",
	})
	assert.ErrorContains(t, err, "fecha invalida")
}
