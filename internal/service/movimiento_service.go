package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/OvidioSandoval/peluqueria-sub000/internal/dto"
	"github.com/OvidioSandoval/peluqueria-sub000/internal/model"
	"github.com/OvidioSandoval/peluqueria-sub000/internal/repository"
)

type MovimientoService interface {
	Registrar(ctx context.Context, req dto.RegistrarMovimientoRequest) (*model.Movimiento, error)
	Listar(ctx context.Context) ([]model.Movimiento, error)
	ListarPorCaja(ctx context.Context, cajaID uint) ([]model.Movimiento, error)
	Eliminar(ctx context.Context, id uint) error
}

type movimientoService struct {
	repo     repository.MovimientoRepository
	cajaRepo repository.CajaRepository
}

func NewMovimientoService(repo repository.MovimientoRepository, cajaRepo repository.CajaRepository) MovimientoService {
	return &movimientoService{repo: repo, cajaRepo: cajaRepo}
}

func (s *movimientoService) Registrar(ctx context.Context, req dto.RegistrarMovimientoRequest) (*model.Movimiento, error) {
	if _, err := s.cajaRepo.FindByID(ctx, req.CajaID); err != nil {
		return nil, errors.New("caja no encontrada")
	}

	fecha := time.Now()
	if req.Fecha != "" {
		parsed, err := time.Parse(time.RFC3339, req.Fecha)
		if err != nil {
			return nil, fmt.Errorf("fecha invalida: %w", err)
		}
		fecha = parsed
	}

	mov := &model.Movimiento{
		CajaID:      req.CajaID,
		Fecha:       fecha,
		Monto:       req.Monto,
		Tipo:        req.Tipo,
		Descripcion: req.Descripcion,
	}
	if err := s.repo.Create(ctx, mov); err != nil {
		return nil, err
	}
	return mov, nil
}

func (s *movimientoService) Listar(ctx context.Context) ([]model.Movimiento, error) {
	return s.repo.ListAll(ctx)
}

func (s *movimientoService) ListarPorCaja(ctx context.Context, cajaID uint) ([]model.Movimiento, error) {
	return s.repo.ListByCaja(ctx, cajaID)
}

func (s *movimientoService) Eliminar(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
