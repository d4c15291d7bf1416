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

type MovimientosHandler struct{ svc service.MovimientoService }

func NewMovimientosHandler(svc service.MovimientoService) *MovimientosHandler {
	return &MovimientosHandler{svc: svc}
}

// Listar pages the full movement collection. Filters: cajaId, tipo, fecha.
func (h *MovimientosHandler) Listar(c *gin.Context) {
	movimientos, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}

	lista := listing.Nuevo(movimientos)
	if cajaID := c.Query("cajaId"); cajaID != "" {
		lista.DefinirFiltro("cajaId", cajaID, func(m model.Movimiento) string {
			return strconv.FormatUint(uint64(m.CajaID), 10)
		})
	}
	lista.DefinirFiltro("tipo", c.Query("tipo"), func(m model.Movimiento) string { return m.Tipo })
	lista.DefinirFiltro("fecha", c.Query("fecha"), func(m model.Movimiento) string {
		return m.Fecha.Format(time.RFC3339)
	})
	lista.CambiarPagina(paginaQuery(c))

	c.JSON(http.StatusOK, listing.Envolver(lista))
}

func (h *MovimientosHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarMovimientoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	mov, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, mov)
}

func (h *MovimientosHandler) Eliminar(c *gin.Context) {
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
