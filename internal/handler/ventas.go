package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/OvidioSandoval/peluqueria-sub000/internal/apierror"
	"github.com/OvidioSandoval/peluqueria-sub000/internal/dto"
	"github.com/OvidioSandoval/peluqueria-sub000/internal/listing"
	"github.com/OvidioSandoval/peluqueria-sub000/internal/model"
	"github.com/OvidioSandoval/peluqueria-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type VentasHandler struct{ svc service.VentaService }

func NewVentasHandler(svc service.VentaService) *VentasHandler { return &VentasHandler{svc: svc} }

// Listar pages the full sales collection. Filters: fecha (calendar day
// prefix), metodoPago.
func (h *VentasHandler) Listar(c *gin.Context) {
	ventas, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}

	lista := listing.Nuevo(ventas)
	lista.DefinirFiltro("fecha", c.Query("fecha"), func(v model.Venta) string {
		return v.FechaVenta.Format(time.RFC3339)
	})
	lista.DefinirFiltro("metodoPago", c.Query("metodoPago"), func(v model.Venta) string {
		return v.MetodoPago
	})
	lista.CambiarPagina(paginaQuery(c))

	c.JSON(http.StatusOK, listing.Envolver(lista))
}

// ListarDetalles exposes the raw line-item collection the register
// reconciliation consumes. Optional filter: ventaId.
func (h *VentasHandler) ListarDetalles(c *gin.Context) {
	detalles, err := h.svc.ListarDetalles(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}

	lista := listing.Nuevo(detalles)
	if ventaID := c.Query("ventaId"); ventaID != "" {
		lista.DefinirFiltro("ventaId", ventaID, func(d model.DetalleVenta) string {
			return strconv.FormatUint(uint64(d.VentaID), 10)
		})
	}
	lista.CambiarPagina(paginaQuery(c))

	c.JSON(http.StatusOK, listing.Envolver(lista))
}

func (h *VentasHandler) ObtenerPorID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	venta, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, venta)
}

func (h *VentasHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *VentasHandler) Eliminar(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
