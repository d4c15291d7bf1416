package service

import (
	"context"
	"errors"
	"time"

	"github.com/OvidioSandoval/peluqueria-sub000/internal/dto"
	"github.com/OvidioSandoval/peluqueria-sub000/internal/model"
	"github.com/OvidioSandoval/peluqueria-sub000/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type CajaService interface {
	Crear(ctx context.Context, req dto.CrearCajaRequest) (*model.Caja, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarCajaRequest) (*model.Caja, error)
	Eliminar(ctx context.Context, id uint) error
	ObtenerPorID(ctx context.Context, id uint) (*model.Caja, error)
	Listar(ctx context.Context) ([]model.Caja, error)
	Reporte(ctx context.Context, id uint) (*dto.ReporteCajaResponse, error)
}

type cajaService struct {
	repo         repository.CajaRepository
	empleadoRepo repository.EmpleadoRepository
	arqueo       ArqueoService
}

func NewCajaService(repo repository.CajaRepository, empleadoRepo repository.EmpleadoRepository, arqueo ArqueoService) CajaService {
	return &cajaService{repo: repo, empleadoRepo: empleadoRepo, arqueo: arqueo}
}

func (s *cajaService) Crear(ctx context.Context, req dto.CrearCajaRequest) (*model.Caja, error) {
	if req.EmpleadoID != nil {
		if _, err := s.empleadoRepo.FindByID(ctx, *req.EmpleadoID); err != nil {
			return nil, errors.New("empleado no encontrado")
		}
	}

	horaApertura := req.HoraApertura
	if horaApertura == nil {
		h := time.Now().Format("15:04:05")
		horaApertura = &h
	}

	caja := &model.Caja{
		Nombre:          req.Nombre,
		Fecha:           req.Fecha,
		HoraApertura:    horaApertura,
		MontoInicial:    req.MontoInicial,
		TotalServicios:  decimal.Zero,
		TotalProductos:  decimal.Zero,
		TotalDescuentos: decimal.Zero,
		Estado:          model.CajaAbierta,
		EmpleadoID:      req.EmpleadoID,
	}
	if err := s.repo.Create(ctx, caja); err != nil {
		return nil, err
	}
	return caja, nil
}

// Actualizar edits the mutable fields and re-runs the reconciliation, the
// same sequence the register edit flow always performed. Fecha and
// MontoInicial never change; a cerrada register never reopens.
func (s *cajaService) Actualizar(ctx context.Context, id uint, req dto.ActualizarCajaRequest) (*model.Caja, error) {
	caja, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("caja no encontrada")
	}

	if caja.Estado == model.CajaCerrada && req.Estado == model.CajaAbierta {
		return nil, errors.New("una caja cerrada no puede reabrirse")
	}

	if req.EmpleadoID != nil {
		if _, err := s.empleadoRepo.FindByID(ctx, *req.EmpleadoID); err != nil {
			return nil, errors.New("empleado no encontrado")
		}
	}

	caja.Nombre = req.Nombre
	caja.EmpleadoID = req.EmpleadoID
	if req.HoraCierre != nil {
		caja.HoraCierre = req.HoraCierre
	}
	if req.Estado == model.CajaCerrada {
		caja.Estado = model.CajaCerrada
		if caja.HoraCierre == nil {
			h := time.Now().Format("15:04:05")
			caja.HoraCierre = &h
		}
	}

	if err := s.repo.Update(ctx, caja); err != nil {
		return nil, err
	}

	// Recompute totals. A failed recompute is not fatal: the register keeps
	// its previous totals instead of being zeroed out.
	recalculada, err := s.arqueo.RecalcularCaja(ctx, caja.ID)
	if err != nil {
		log.Warn().Err(err).Uint("caja_id", caja.ID).Msg("arqueo fallido, se conservan totales previos")
		return caja, nil
	}
	return recalculada, nil
}

func (s *cajaService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("caja no encontrada")
	}
	return s.repo.Delete(ctx, id)
}

func (s *cajaService) ObtenerPorID(ctx context.Context, id uint) (*model.Caja, error) {
	caja, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("caja no encontrada")
	}
	return caja, nil
}

func (s *cajaService) Listar(ctx context.Context) ([]model.Caja, error) {
	return s.repo.ListAll(ctx)
}

// Reporte computes the register's current totals without persisting them.
func (s *cajaService) Reporte(ctx context.Context, id uint) (*dto.ReporteCajaResponse, error) {
	caja, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("caja no encontrada")
	}

	totales, err := s.arqueo.CalcularCaja(ctx, caja)
	if err != nil {
		return nil, err
	}

	return &dto.ReporteCajaResponse{
		CajaID:          caja.ID,
		Nombre:          caja.Nombre,
		Fecha:           caja.Fecha,
		Estado:          caja.Estado,
		MontoInicial:    caja.MontoInicial,
		TotalServicios:  totales.TotalServicios,
		TotalProductos:  totales.TotalProductos,
		TotalDescuentos: totales.TotalDescuentos,
		MontoFinal:      totales.MontoFinal,
	}, nil
}
