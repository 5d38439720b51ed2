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

	appartacom "github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/artacom"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/audit"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/auth"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/inventory"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/usecase"
	infraartacom "github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/infrastructure/artacom"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/infrastructure/postgres"
	httpRouter "github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/interfaces/http"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/pkg/config"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/pkg/logger"
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
	roleRepo := postgres.NewRoleRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	historyRepo := postgres.NewItemHistoryRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	syncRepo := postgres.NewSyncRunRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	auditor := audit.NewRecorder(auditRepo, log)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:            cfg.JWT.Secret,
		AccessExpMinutes:  cfg.JWT.AccessExpMinutes,
		RefreshExpMinutes: cfg.JWT.RefreshExpMinutes,
		Issuer:            cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo, roleRepo, auditor)
	roleUC := usecase.NewRoleUseCase(roleRepo, userRepo, auditor)
	productUC := usecase.NewProductUseCase(productRepo, auditor)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, auditor)
	itemUC := inventory.NewItemUseCase(txRunner, itemRepo, historyRepo, productRepo, warehouseRepo, auditor)
	stockUC := inventory.NewStockUseCase(txRunner, stockRepo, productRepo, warehouseRepo, auditor)
	auditUC := usecase.NewAuditLogUseCase(auditRepo)

	fetcher := infraartacom.NewClient(cfg.Artacom)
	artacomUC := appartacom.NewSyncUseCase(fetcher, txRunner, itemRepo, productRepo, warehouseRepo, syncRepo, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventory API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		RoleUC:      roleUC,
		ProductUC:   productUC,
		WarehouseUC: warehouseUC,
		ItemUC:      itemUC,
		StockUC:     stockUC,
		AuditUC:     auditUC,
		ArtacomUC:   artacomUC,

		UserRepo:          userRepo,
		JWTSecret:         cfg.JWT.Secret,
		RefreshExpMinutes: cfg.JWT.RefreshExpMinutes,
		SecureCookie:      cfg.App.Env == "production",
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
