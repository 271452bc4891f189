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
	_ "github.com/tu-usuario/produccion-pro/docs"
	"github.com/tu-usuario/produccion-pro/internal/application/alerts"
	"github.com/tu-usuario/produccion-pro/internal/application/production"
	"github.com/tu-usuario/produccion-pro/internal/application/report"
	infrapdf "github.com/tu-usuario/produccion-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/produccion-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/produccion-pro/internal/interfaces/http"
	"github.com/tu-usuario/produccion-pro/pkg/config"
	"github.com/tu-usuario/produccion-pro/pkg/logger"
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

	materialRepo := postgres.NewMaterialRepository(pool)
	recipeRepo := postgres.NewRecipeRepository(pool)
	trxRepo := postgres.NewTransactionRepository(pool)

	availabilityUC := production.NewAvailabilityUseCase(recipeRepo, materialRepo)
	batchUC := production.NewBatchUseCase(recipeRepo, materialRepo)
	multiProductUC := production.NewMultiProductUseCase(recipeRepo, materialRepo)
	alertUC := alerts.NewAlertUseCase(materialRepo, trxRepo, cfg.Engine.UsageWindowDays)
	dashboardUC := alerts.NewDashboardUseCase(alertUC)

	// PDF: reporte de recomendaciones de reorden para compras
	reportGenerator := infrapdf.NewMarotoReportGenerator()
	reorderReportUC := report.NewReorderReportUseCase(alertUC, reportGenerator)

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
		Title:    "Producción Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AvailabilityUC:  availabilityUC,
		BatchUC:         batchUC,
		MultiProductUC:  multiProductUC,
		AlertUC:         alertUC,
		DashboardUC:     dashboardUC,
		ReorderReportUC: reorderReportUC,
		JWTSecret:       cfg.JWT.Secret,
		MaxForecastDays: cfg.Engine.MaxForecastDays,
		MaxTargetDays:   cfg.Engine.MaxTargetDays,
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
