package router

import (
	"time"

	"frenotaller/internal/config"
	"frenotaller/internal/handler"
	"frenotaller/internal/middleware"
	"frenotaller/internal/model"
	"frenotaller/internal/repository"
	"frenotaller/internal/service"
	"frenotaller/internal/session"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository/SessionManager ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Session manager ──────────────────────────────────────────────────────
	sessions := session.NewManager(
		session.NewRedisStore(rdb),
		time.Duration(cfg.SessionTTLHours)*time.Hour,
	)

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	compraRepo := repository.NewCompraRepository(db)
	ordenRepo := repository.NewOrdenRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	clienteRepo := repository.NewClienteRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, sessions)
	productoSvc := service.NewProductoService(productoRepo)
	compraSvc := service.NewCompraService(compraRepo)
	ordenSvc := service.NewOrdenService(ordenRepo)
	ventaSvc := service.NewVentaService(ventaRepo)
	clienteSvc := service.NewClienteService(clienteRepo)
	reporteSvc := service.NewReporteService(productoRepo, ordenRepo, ventaRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	comprasH := handler.NewComprasHandler(compraSvc)
	ordenesH := handler.NewOrdenesHandler(ordenSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	reportesH := handler.NewReportesHandler(reporteSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	authMW := middleware.RequireAuth(sessions, usuarioRepo)
	soloAdmin := middleware.RequireRole(model.RolAdmin)
	taller := middleware.RequireRole(model.RolWorker, model.RolAdmin)

	auth := r.Group("/api/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/logout", authH.Logout)
		auth.GET("/me", authMW, authH.Me)
		auth.POST("/register", authMW, soloAdmin, authH.Registrar)
	}

	// Protected business routes
	api := r.Group("/api", authMW)
	{
		api.GET("/products", productosH.Listar)
		api.POST("/products", soloAdmin, productosH.Crear)
		api.PUT("/products/:id", soloAdmin, productosH.Actualizar)
		api.DELETE("/products/:id", soloAdmin, productosH.Eliminar)

		api.GET("/purchases", comprasH.Listar)
		api.POST("/purchases", soloAdmin, comprasH.Crear)

		api.GET("/work-orders", ordenesH.Listar)
		api.POST("/work-orders", taller, ordenesH.Crear)
		api.PUT("/work-orders/:id", taller, ordenesH.Actualizar)
		api.DELETE("/work-orders/:id", soloAdmin, ordenesH.Eliminar)

		api.GET("/counter-sales", ventasH.Listar)
		api.POST("/counter-sales", taller, ventasH.Crear)

		api.GET("/clients", clientesH.Listar)
		api.POST("/clients", clientesH.Crear)
		api.PUT("/clients/:id", clientesH.Actualizar)

		api.GET("/reports/low-stock", reportesH.BajoStock)
		api.GET("/reports/daily-cash", reportesH.CajaDiaria)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
