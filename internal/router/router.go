package router

import (
	"time"

	"github.com/OvidioSandoval/peluqueria-sub000/internal/config"
	"github.com/OvidioSandoval/peluqueria-sub000/internal/handler"
	"github.com/OvidioSandoval/peluqueria-sub000/internal/middleware"
	"github.com/OvidioSandoval/peluqueria-sub000/internal/repository"
	"github.com/OvidioSandoval/peluqueria-sub000/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	cajaRepo := repository.NewCajaRepository(db)
	movimientoRepo := repository.NewMovimientoRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	catalogoRepo := repository.NewCatalogoRepository(db)
	empleadoRepo := repository.NewEmpleadoRepository(db)
	clienteRepo := repository.NewClienteRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	arqueoSvc := service.NewArqueoService(cajaRepo, ventaRepo, movimientoRepo, cfg.CierreDescuentaDescuentos)
	cajaSvc := service.NewCajaService(cajaRepo, empleadoRepo, arqueoSvc)
	ventaSvc := service.NewVentaService(ventaRepo, catalogoRepo)
	movimientoSvc := service.NewMovimientoService(movimientoRepo, cajaRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	cajasH := handler.NewCajasHandler(cajaSvc, rdb, cfg)
	ventasH := handler.NewVentasHandler(ventaSvc)
	movimientosH := handler.NewMovimientosHandler(movimientoSvc)
	catalogoH := handler.NewCatalogoHandler(catalogoRepo)
	empleadosH := handler.NewEmpleadosHandler(empleadoRepo)
	clientesH := handler.NewClientesHandler(clienteRepo)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	// Route names kept compatible with the original front end.
	api := r.Group("/api")
	{
		cajas := api.Group("/cajas")
		{
			cajas.GET("", cajasH.Listar)
			cajas.GET("/:id", cajasH.ObtenerPorID)
			cajas.GET("/:id/reporte", cajasH.Reporte)
			cajas.POST("/agregar_caja", cajasH.Crear)
			cajas.PUT("/actualizar_caja/:id", cajasH.Actualizar)
			cajas.DELETE("/eliminar_caja/:id", cajasH.Eliminar)
			cajas.GET("/export/pdf", cajasH.ExportarPDF)
		}

		ventas := api.Group("/ventas")
		{
			ventas.GET("", ventasH.Listar)
			ventas.GET("/:id", ventasH.ObtenerPorID)
			ventas.POST("", ventasH.Registrar)
			ventas.DELETE("/:id", ventasH.Eliminar)
		}

		api.GET("/detalle-venta", ventasH.ListarDetalles)

		movimientos := api.Group("/movimientos-caja")
		{
			movimientos.GET("", movimientosH.Listar)
			movimientos.POST("", movimientosH.Registrar)
			movimientos.DELETE("/:id", movimientosH.Eliminar)
		}

		servicios := api.Group("/servicios")
		{
			servicios.GET("", catalogoH.ListarServicios)
			servicios.POST("", catalogoH.CrearServicio)
			servicios.PUT("/:id", catalogoH.ActualizarServicio)
			servicios.DELETE("/:id", catalogoH.EliminarServicio)
		}

		productos := api.Group("/productos")
		{
			productos.GET("", catalogoH.ListarProductos)
			productos.POST("", catalogoH.CrearProducto)
			productos.PUT("/:id", catalogoH.ActualizarProducto)
			productos.DELETE("/:id", catalogoH.EliminarProducto)
		}

		empleados := api.Group("/empleados")
		{
			empleados.GET("", empleadosH.Listar)
			empleados.POST("", empleadosH.Crear)
			empleados.PUT("/:id", empleadosH.Actualizar)
			empleados.DELETE("/:id", empleadosH.Eliminar)
		}

		clientes := api.Group("/clientes")
		{
			clientes.GET("", clientesH.Listar)
			clientes.POST("", clientesH.Crear)
			clientes.PUT("/:id", clientesH.Actualizar)
			clientes.DELETE("/:id", clientesH.Eliminar)
		}
	}

	return r
}
