package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/OvidioSandoval/peluqueria-sub000/internal/dto"
	"github.com/OvidioSandoval/peluqueria-sub000/internal/model"
	"github.com/OvidioSandoval/peluqueria-sub000/internal/repository"

	"github.com/shopspring/decimal"
)

type VentaService interface {
	Registrar(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*model.Venta, error)
	Listar(ctx context.Context) ([]model.Venta, error)
	ListarDetalles(ctx context.Context) ([]model.DetalleVenta, error)
	Eliminar(ctx context.Context, id uint) error
}

type ventaService struct {
	repo     repository.VentaRepository
	catalogo repository.CatalogoRepository
}

func NewVentaService(repo repository.VentaRepository, catalogo repository.CatalogoRepository) VentaService {
	return &ventaService{repo: repo, catalogo: catalogo}
}

// Registrar creates an immutable sale with its line items. Unit prices are
// frozen from the catalog at registration time.
func (s *ventaService) Registrar(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	fechaVenta := time.Now()
	if req.FechaVenta != "" {
		parsed, err := time.Parse(time.RFC3339, req.FechaVenta)
		if err != nil {
			return nil, fmt.Errorf("fechaVenta invalida: %w", err)
		}
		fechaVenta = parsed
	}

	type lineaResuelta struct {
		detalle     model.DetalleVenta
		descripcion string
		rubro       string
	}

	var resueltas []lineaResuelta
	cantidadArticulos := 0
	bruto := decimal.Zero

	for i, linea := range req.Detalles {
		if (linea.ServicioID == nil) == (linea.ProductoID == nil) {
			return nil, fmt.Errorf("detalle %d: debe referenciar exactamente un servicio o un producto", i+1)
		}

		var precio decimal.Decimal
		var descripcion, rubro string
		if linea.ServicioID != nil {
			servicio, err := s.catalogo.FindServicioByID(ctx, *linea.ServicioID)
			if err != nil {
				return nil, fmt.Errorf("servicio %d no encontrado", *linea.ServicioID)
			}
			if !servicio.Activo {
				return nil, fmt.Errorf("servicio %q esta inactivo", servicio.Nombre)
			}
			precio = servicio.PrecioBase
			descripcion = servicio.Nombre
			rubro = "servicio"
		} else {
			producto, err := s.catalogo.FindProductoByID(ctx, *linea.ProductoID)
			if err != nil {
				return nil, fmt.Errorf("producto %d no encontrado", *linea.ProductoID)
			}
			if !producto.Activo {
				return nil, fmt.Errorf("producto %q esta inactivo", producto.Nombre)
			}
			precio = producto.PrecioVenta
			descripcion = producto.Nombre
			rubro = "producto"
		}

		detalle := model.DetalleVenta{
			ServicioID:     linea.ServicioID,
			ProductoID:     linea.ProductoID,
			Cantidad:       linea.Cantidad,
			PrecioUnitario: precio,
		}
		cantidadArticulos += linea.Cantidad
		bruto = bruto.Add(detalle.Subtotal())
		resueltas = append(resueltas, lineaResuelta{detalle: detalle, descripcion: descripcion, rubro: rubro})
	}

	if req.DescuentoAplicado.GreaterThan(bruto) {
		return nil, errors.New("el descuento supera el total de la venta")
	}
	montoTotal := bruto.Sub(req.DescuentoAplicado)

	venta := model.Venta{
		FechaVenta:        fechaVenta,
		CantidadArticulos: cantidadArticulos,
		MontoTotal:        montoTotal,
		DescuentoAplicado: req.DescuentoAplicado,
		MetodoPago:        req.MetodoPago,
		Observaciones:     req.Observaciones,
		ClienteID:         req.ClienteID,
		EmpleadoID:        req.EmpleadoID,
	}
	for _, r := range resueltas {
		venta.Detalles = append(venta.Detalles, r.detalle)
	}

	if err := s.repo.Create(ctx, &venta); err != nil {
		return nil, err
	}

	resp := &dto.VentaResponse{
		ID:                venta.ID,
		FechaVenta:        venta.FechaVenta.Format(time.RFC3339),
		CantidadArticulos: venta.CantidadArticulos,
		MontoTotal:        venta.MontoTotal,
		DescuentoAplicado: venta.DescuentoAplicado,
		MetodoPago:        venta.MetodoPago,
	}
	for i, r := range resueltas {
		resp.Detalles = append(resp.Detalles, dto.DetalleVentaResponse{
			Descripcion:    r.descripcion,
			Rubro:          r.rubro,
			Cantidad:       venta.Detalles[i].Cantidad,
			PrecioUnitario: venta.Detalles[i].PrecioUnitario,
			Subtotal:       venta.Detalles[i].Subtotal(),
		})
	}
	return resp, nil
}

func (s *ventaService) ObtenerPorID(ctx context.Context, id uint) (*model.Venta, error) {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("venta no encontrada")
	}
	return venta, nil
}

func (s *ventaService) Listar(ctx context.Context) ([]model.Venta, error) {
	return s.repo.ListAll(ctx)
}

func (s *ventaService) ListarDetalles(ctx context.Context) ([]model.DetalleVenta, error) {
	return s.repo.ListAllDetalles(ctx)
}

func (s *ventaService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("venta no encontrada")
	}
	return s.repo.Delete(ctx, id)
}
