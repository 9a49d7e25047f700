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

	"github.com/aquafarm-pro/aquafarm-api/internal/application/aquarium"
	"github.com/aquafarm-pro/aquafarm-api/internal/application/auth"
	"github.com/aquafarm-pro/aquafarm-api/internal/application/extraction"
	"github.com/aquafarm-pro/aquafarm-api/internal/application/reception"
	"github.com/aquafarm-pro/aquafarm-api/internal/application/shipment"
	infraai "github.com/aquafarm-pro/aquafarm-api/internal/infrastructure/ai"
	infrapdf "github.com/aquafarm-pro/aquafarm-api/internal/infrastructure/pdf"
	"github.com/aquafarm-pro/aquafarm-api/internal/infrastructure/postgres"
	"github.com/aquafarm-pro/aquafarm-api/internal/infrastructure/spreadsheet"
	httpRouter "github.com/aquafarm-pro/aquafarm-api/internal/interfaces/http"
	"github.com/aquafarm-pro/aquafarm-api/pkg/config"
	"github.com/aquafarm-pro/aquafarm-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	farmRepo := postgres.NewFarmRepository(pool)
	aquariumRepo := postgres.NewAquariumRepository(pool)
	shipmentRepo := postgres.NewShipmentRepository(pool)
	instanceRepo := postgres.NewFishInstanceRepository(pool)
	planRepo := postgres.NewReceptionPlanRepository(pool)
	itemRepo := postgres.NewReceptionItemRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, farmRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	aquariumUC := aquarium.NewUseCase(aquariumRepo, farmRepo)

	extractor := infraai.NewAnthropicExtractor(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	sheetReader := spreadsheet.NewExcelizeReader()
	extractionUC := extraction.NewUseCase(
		extractor, sheetReader,
		time.Duration(cfg.AI.TimeoutSeconds)*time.Second,
	)

	importUC := shipment.NewImportUseCase(txRunner, farmRepo)
	queryUC := shipment.NewQueryUseCase(shipmentRepo, instanceRepo)

	worksheetGen := infrapdf.NewMarotoWorksheetGenerator()
	receptionUC := reception.NewUseCase(planRepo, itemRepo, worksheetGen)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    25 << 20, // document uploads
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "AquaFarm API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		AquariumUC:     aquariumUC,
		ExtractionUC:   extractionUC,
		ShipmentImport: importUC,
		ShipmentQuery:  queryUC,
		ReceptionUC:    receptionUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
