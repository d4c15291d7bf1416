package handler

import (
	"net/http"

	"github.com/OvidioSandoval/peluqueria-sub000/internal/apierror"
	"github.com/OvidioSandoval/peluqueria-sub000/internal/dto"
	"github.com/OvidioSandoval/peluqueria-sub000/internal/listing"
	"github.com/OvidioSandoval/peluqueria-sub000/internal/model"
	"github.com/OvidioSandoval/peluqueria-sub000/internal/repository"

	"github.com/gin-gonic/gin"
)

// CatalogoHandler serves servicios and productos. Plain CRUD over the
// repository; no service layer in between because there are no business
// rules beyond required fields.
type CatalogoHandler struct{ repo repository.CatalogoRepository }

func NewCatalogoHandler(repo repository.CatalogoRepository) *CatalogoHandler {
	return &CatalogoHandler{repo: repo}
}

// ─── Servicios ───────────────────────────────────────────────────────────────

func (h *CatalogoHandler) ListarServicios(c *gin.Context) {
	servicios, err := h.repo.ListServicios(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	lista := listing.Nuevo(servicios)
	lista.DefinirFiltro("busqueda", c.Query("busqueda"),
		func(s model.Servicio) string { return s.Nombre },
		func(s model.Servicio) string { return s.Descripcion },
	)
	lista.CambiarPagina(paginaQuery(c))
	c.JSON(http.StatusOK, listing.Envolver(lista))
}

func (h *CatalogoHandler) CrearServicio(c *gin.Context) {
	var req dto.ServicioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	servicio := &model.Servicio{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		PrecioBase:  req.PrecioBase,
		Activo:      req.Activo == nil || *req.Activo,
	}
	if err := h.repo.CreateServicio(c.Request.Context(), servicio); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, servicio)
}

func (h *CatalogoHandler) ActualizarServicio(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.ServicioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	servicio, err := h.repo.FindServicioByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("servicio no encontrado"))
		return
	}
	servicio.Nombre = req.Nombre
	servicio.Descripcion = req.Descripcion
	servicio.PrecioBase = req.PrecioBase
	if req.Activo != nil {
		servicio.Activo = *req.Activo
	}
	if err := h.repo.UpdateServicio(c.Request.Context(), servicio); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, servicio)
}

func (h *CatalogoHandler) EliminarServicio(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.repo.DeleteServicio(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// ─── Productos ───────────────────────────────────────────────────────────────

func (h *CatalogoHandler) ListarProductos(c *gin.Context) {
	productos, err := h.repo.ListProductos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	lista := listing.Nuevo(productos)
	lista.DefinirFiltro("busqueda", c.Query("busqueda"),
		func(p model.Producto) string { return p.Nombre },
		func(p model.Producto) string { return p.Descripcion },
	)
	lista.CambiarPagina(paginaQuery(c))
	c.JSON(http.StatusOK, listing.Envolver(lista))
}

func (h *CatalogoHandler) CrearProducto(c *gin.Context) {
	var req dto.ProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	producto := &model.Producto{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		PrecioVenta: req.PrecioVenta,
		Stock:       req.Stock,
		Activo:      req.Activo == nil || *req.Activo,
	}
	if err := h.repo.CreateProducto(c.Request.Context(), producto); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, producto)
}

func (h *CatalogoHandler) ActualizarProducto(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.ProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	producto, err := h.repo.FindProductoByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("producto no encontrado"))
		return
	}
	producto.Nombre = req.Nombre
	producto.Descripcion = req.Descripcion
	producto.PrecioVenta = req.PrecioVenta
	producto.Stock = req.Stock
	if req.Activo != nil {
		producto.Activo = *req.Activo
	}
	if err := h.repo.UpdateProducto(c.Request.Context(), producto); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, producto)
}

func (h *CatalogoHandler) EliminarProducto(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.repo.DeleteProducto(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
