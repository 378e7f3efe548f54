package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/shoplite/shoplite-api/internal/api/handler"
	"github.com/shoplite/shoplite-api/internal/api/middleware"
	"github.com/shoplite/shoplite-api/internal/core/domain"
	"github.com/shoplite/shoplite-api/internal/core/service"
	"github.com/shoplite/shoplite-api/internal/core/token"
	"github.com/shoplite/shoplite-api/internal/infrastructure/config"
	redisdb "github.com/shoplite/shoplite-api/internal/infrastructure/db/redis"
	"github.com/shoplite/shoplite-api/internal/infrastructure/db/sqlite"
	"github.com/shoplite/shoplite-api/internal/infrastructure/storage"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, store *sqlite.Store, rdb *redis.Client, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("shoplite"))

	// --- Dependencies ---
	codec := token.NewCodec(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := sqlite.NewUserRepository(store)
	productRepo := sqlite.NewProductRepository(store)
	orderRepo := sqlite.NewOrderRepository(store)
	settingsRepo := sqlite.NewSettingsRepository(store)
	idemStore := redisdb.NewIdempotencyStore(rdb)

	imageStore, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	authService := service.NewAuthService(userRepo, codec, service.NewBcryptHasher(0), cfg.AdminDomain)
	productService := service.NewProductService(productRepo)
	orderService := service.NewOrderService(orderRepo, idemStore)
	settingsService := service.NewSettingsService(settingsRepo)
	imageService := service.NewImageService(imageStore)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	orderHandler := handler.NewOrderHandler(orderService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	imageHandler := handler.NewImageHandler(imageService)

	authRequired := middleware.Auth(codec, log)
	adminOnly := []echo.MiddlewareFunc{authRequired, middleware.RBAC(domain.RoleAdmin)}

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/forgot-password", authHandler.ForgotPassword)
	e.POST("/change-password", authHandler.ChangePassword, authRequired)

	// --- Catalog ---
	e.GET("/products", productHandler.List)
	e.GET("/products/:id", productHandler.Get)
	e.POST("/products", productHandler.Create, adminOnly...)
	e.PUT("/products/:id", productHandler.Update, adminOnly...)
	e.DELETE("/products/:id", productHandler.Delete, adminOnly...)
	e.POST("/products/:id/inventory", productHandler.AdjustStock, adminOnly...)

	// --- Orders ---
	e.POST("/orders", orderHandler.Create, authRequired)
	e.GET("/orders", orderHandler.List, authRequired)
	e.GET("/orders/:number", orderHandler.Get, authRequired)

	// --- Images ---
	e.POST("/images", imageHandler.Upload, adminOnly...)
	e.DELETE("/images/:name", imageHandler.Delete, adminOnly...)
	e.Static("/uploads", cfg.UploadDir)

	// --- Settings ---
	e.GET("/settings", settingsHandler.Get)
	e.PUT("/settings", settingsHandler.Update, adminOnly...)

	// --- Health probes & metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(store, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
