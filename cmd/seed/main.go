// seed bootstraps a fresh database: the admin role with the full permission
// catalog, two operational roles, an admin account and the default
// warehouses. Safe to run once per environment; existing rows are skipped.
//
// Usage: go run ./cmd/seed
// Admin credentials come from SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD
// (defaults: admin@example.com / changeme123).
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/entity"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/infrastructure/postgres"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/pkg/config"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	roleRepo := postgres.NewRoleRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)

	now := time.Now()

	roles := []*entity.Role{
		{
			Name:        "admin",
			Permissions: domain.Strings(domain.AllPermissions()),
		},
		{
			// Field technicians: read the catalog, move and re-status items.
			Name: "teknisi",
			Permissions: domain.Strings([]domain.Permission{
				domain.PermProductsView, domain.PermItemsView,
				domain.PermItemsUpdate, domain.PermItemsMove,
				domain.PermHistoriesView,
			}),
		},
		{
			// Warehouse staff: item intake and bulk stock handling.
			Name: "gudang",
			Permissions: domain.Strings([]domain.Permission{
				domain.PermProductsView, domain.PermItemsView,
				domain.PermItemsCreate, domain.PermItemsUpdate, domain.PermItemsMove,
				domain.PermStockView, domain.PermStockIn, domain.PermStockOut,
				domain.PermHistoriesView,
			}),
		},
	}

	var adminRoleID string
	for _, r := range roles {
		existing, err := roleRepo.GetByName(r.Name)
		if err != nil {
			log.Fatal().Err(err).Str("role", r.Name).Msg("check role")
		}
		if existing != nil {
			log.Info().Str("role", r.Name).Msg("role already present, skipped")
			if r.Name == "admin" {
				adminRoleID = existing.ID
			}
			continue
		}
		r.ID = uuid.New().String()
		r.CreatedAt = now
		r.UpdatedAt = now
		if err := roleRepo.Create(r); err != nil {
			log.Fatal().Err(err).Str("role", r.Name).Msg("create role")
		}
		log.Info().Str("role", r.Name).Msg("role created")
		if r.Name == "admin" {
			adminRoleID = r.ID
		}
	}

	email := envOr("SEED_ADMIN_EMAIL", "admin@example.com")
	password := envOr("SEED_ADMIN_PASSWORD", "changeme123")
	existing, err := userRepo.GetByEmail(email)
	if err != nil {
		log.Fatal().Err(err).Msg("check admin user")
	}
	if existing == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash admin password")
		}
		admin := &entity.User{
			ID:           uuid.New().String(),
			Email:        email,
			PasswordHash: string(hash),
			Name:         "Administrator",
			RoleID:       adminRoleID,
			Status:       entity.UserStatusActive,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(admin); err != nil {
			log.Fatal().Err(err).Msg("create admin user")
		}
		log.Info().Str("email", email).Msg("admin user created")
	} else {
		log.Info().Str("email", email).Msg("admin user already present, skipped")
	}

	warehouses := []*entity.Warehouse{
		{Code: "JKT-01", Name: "Gudang Jakarta", Address: "Jakarta"},
		{Code: "BDG-01", Name: "Gudang Bandung", Address: "Bandung"},
	}
	for _, w := range warehouses {
		existing, err := warehouseRepo.GetByCode(w.Code)
		if err != nil {
			log.Fatal().Err(err).Str("code", w.Code).Msg("check warehouse")
		}
		if existing != nil {
			log.Info().Str("code", w.Code).Msg("warehouse already present, skipped")
			continue
		}
		w.ID = uuid.New().String()
		w.CreatedAt = now
		w.UpdatedAt = now
		if err := warehouseRepo.Create(w); err != nil {
			log.Fatal().Err(err).Str("code", w.Code).Msg("create warehouse")
		}
		log.Info().Str("code", w.Code).Msg("warehouse created")
	}

	log.Info().Msg("seed finished")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
