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

type EmpleadosHandler struct{ repo repository.EmpleadoRepository }

func NewEmpleadosHandler(repo repository.EmpleadoRepository) *EmpleadosHandler {
	return &EmpleadosHandler{repo: repo}
}

func (h *EmpleadosHandler) Listar(c *gin.Context) {
	empleados, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	lista := listing.Nuevo(empleados)
	lista.DefinirFiltro("busqueda", c.Query("busqueda"),
		func(e model.Empleado) string { return e.NombreCompleto },
		func(e model.Empleado) string { return e.Telefono },
	)
	lista.CambiarPagina(paginaQuery(c))
	c.JSON(http.StatusOK, listing.Envolver(lista))
}

func (h *EmpleadosHandler) Crear(c *gin.Context) {
	var req dto.PersonaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	empleado := &model.Empleado{
		NombreCompleto: req.NombreCompleto,
		Telefono:       req.Telefono,
		Email:          req.Email,
		Activo:         true,
	}
	if err := h.repo.Create(c.Request.Context(), empleado); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, empleado)
}

func (h *EmpleadosHandler) Actualizar(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.PersonaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	empleado, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("empleado no encontrado"))
		return
	}
	empleado.NombreCompleto = req.NombreCompleto
	empleado.Telefono = req.Telefono
	empleado.Email = req.Email
	if err := h.repo.Update(c.Request.Context(), empleado); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, empleado)
}

func (h *EmpleadosHandler) Eliminar(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

type ClientesHandler struct{ repo repository.ClienteRepository }

func NewClientesHandler(repo repository.ClienteRepository) *ClientesHandler {
	return &ClientesHandler{repo: repo}
}

func (h *ClientesHandler) Listar(c *gin.Context) {
	clientes, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	lista := listing.Nuevo(clientes)
	lista.DefinirFiltro("busqueda", c.Query("busqueda"),
		func(cl model.Cliente) string { return cl.NombreCompleto },
		func(cl model.Cliente) string { return cl.Telefono },
	)
	lista.CambiarPagina(paginaQuery(c))
	c.JSON(http.StatusOK, listing.Envolver(lista))
}

func (h *ClientesHandler) Crear(c *gin.Context) {
	var req dto.PersonaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cliente := &model.Cliente{
		NombreCompleto: req.NombreCompleto,
		Telefono:       req.Telefono,
		Email:          req.Email,
	}
	if err := h.repo.Create(c.Request.Context(), cliente); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, cliente)
}

func (h *ClientesHandler) Actualizar(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.PersonaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cliente, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("cliente no encontrado"))
		return
	}
	cliente.NombreCompleto = req.NombreCompleto
	cliente.Telefono = req.Telefono
	cliente.Email = req.Email
	if err := h.repo.Update(c.Request.Context(), cliente); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, cliente)
}

func (h *ClientesHandler) Eliminar(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
