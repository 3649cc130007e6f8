package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Despensa-api/internal/application/auth"
	"github.com/jhoicas/Despensa-api/internal/application/dashboard"
	"github.com/jhoicas/Despensa-api/internal/application/usecase"
	infracache "github.com/jhoicas/Despensa-api/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/Despensa-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Despensa-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Despensa-api/internal/interfaces/http"
	"github.com/jhoicas/Despensa-api/pkg/config"
	"github.com/jhoicas/Despensa-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Caché de vistas del dashboard: Redis si está habilitado, noop si no.
	viewsCache, err := infracache.NewViewsCache(cfg.Cache)
	if err != nil {
		log.Warn().Err(err).Msg("caché Redis no disponible, dashboard sin caché")
		viewsCache = infracache.NewNoopViewsCache()
	}

	productUC := usecase.NewProductUseCase(productRepo)
	saleUC := usecase.NewSaleUseCase(saleRepo, txRunner)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo, productRepo)
	dashboardUC := dashboard.NewUseCase(productRepo, saleRepo, viewsCache)
	reportGen := infrapdf.NewDashboardReportGenerator(cfg.App.Name)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Despensa API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:       productUC,
		SaleUC:          saleUC,
		SupplierUC:      supplierUC,
		NotificationUC:  notificationUC,
		DashboardUC:     dashboardUC,
		DashboardReport: reportGen,
		AuthUC:          authUC,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
