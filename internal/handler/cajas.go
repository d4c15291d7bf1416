package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/OvidioSandoval/peluqueria-sub000/internal/apierror"
	"github.com/OvidioSandoval/peluqueria-sub000/internal/config"
	"github.com/OvidioSandoval/peluqueria-sub000/internal/dto"
	"github.com/OvidioSandoval/peluqueria-sub000/internal/infra"
	"github.com/OvidioSandoval/peluqueria-sub000/internal/listing"
	"github.com/OvidioSandoval/peluqueria-sub000/internal/model"
	"github.com/OvidioSandoval/peluqueria-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// reporteCacheTTL keeps the totals report cheap under the periodic refresh of
// the register views. Short on purpose: sales land continuously.
const reporteCacheTTL = 60 * time.Second

type CajasHandler struct {
	svc service.CajaService
	rdb *redis.Client
	cfg *config.Config
}

func NewCajasHandler(svc service.CajaService, rdb *redis.Client, cfg *config.Config) *CajasHandler {
	return &CajasHandler{svc: svc, rdb: rdb, cfg: cfg}
}

// Listar returns one page of registers. Filters: busqueda (nombre or
// empleado), estado, fecha. All filtering happens in memory over the full
// collection.
func (h *CajasHandler) Listar(c *gin.Context) {
	cajas, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}

	nombreDe := func(caja model.Caja) string { return caja.Nombre }
	empleadoDe := func(caja model.Caja) string {
		if caja.Empleado != nil {
			return caja.Empleado.NombreCompleto
		}
		return ""
	}

	lista := listing.Nuevo(cajas)
	lista.DefinirFiltro("busqueda", c.Query("busqueda"), nombreDe, empleadoDe)
	lista.DefinirFiltro("estado", c.Query("estado"), func(caja model.Caja) string { return caja.Estado })
	lista.DefinirFiltro("fecha", c.Query("fecha"), func(caja model.Caja) string { return caja.Fecha })
	lista.CambiarPagina(paginaQuery(c))

	c.JSON(http.StatusOK, listing.Envolver(lista))
}

func (h *CajasHandler) ObtenerPorID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	caja, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, caja)
}

func (h *CajasHandler) Crear(c *gin.Context) {
	var req dto.CrearCajaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	caja, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, caja)
}

func (h *CajasHandler) Actualizar(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.ActualizarCajaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	caja, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	h.invalidarReporte(c.Request.Context(), id)
	c.JSON(http.StatusOK, caja)
}

func (h *CajasHandler) Eliminar(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	h.invalidarReporte(c.Request.Context(), id)
	c.Status(http.StatusNoContent)
}

// Reporte serves the reconciliation totals through a Redis read-through cache.
func (h *CajasHandler) Reporte(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	cacheKey := reporteCacheKey(id)

	if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var resp dto.ReporteCajaResponse
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	resp, err := h.svc.Reporte(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}

	// Populate cache — best effort, ignore errors
	if b, jsonErr := json.Marshal(resp); jsonErr == nil {
		_ = h.rdb.Set(context.Background(), cacheKey, b, reporteCacheTTL).Err()
	}

	c.JSON(http.StatusOK, resp)
}

// ExportarPDF renders the current register table to a PDF file and streams
// it back.
func (h *CajasHandler) ExportarPDF(c *gin.Context) {
	cajas, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}

	path, err := infra.GenerateCajasPDF(cajas, h.cfg.PDFStoragePath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo generar el PDF"))
		return
	}
	c.FileAttachment(path, "cajas.pdf")
}

func reporteCacheKey(id uint) string { return fmt.Sprintf("caja:reporte:%d", id) }

func (h *CajasHandler) invalidarReporte(ctx context.Context, id uint) {
	_ = h.rdb.Del(ctx, reporteCacheKey(id)).Err()
}
