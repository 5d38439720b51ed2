package http

import (
	"github.com/gofiber/fiber/v2"

	appartacom "github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/artacom"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/auth"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/inventory"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/usecase"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/repository"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	RoleUC      *usecase.RoleUseCase
	ProductUC   *usecase.ProductUseCase
	WarehouseUC *usecase.WarehouseUseCase
	ItemUC      *inventory.ItemUseCase
	StockUC     *inventory.StockUseCase
	AuditUC     *usecase.AuditLogUseCase
	ArtacomUC   *appartacom.SyncUseCase

	UserRepo          repository.UserRepository
	JWTSecret         string
	RefreshExpMinutes int
	SecureCookie      bool
}

// Router registers the API routes. Every protected route names the
// permission constants that gate it, so the whole permission surface is
// readable from this one table.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login/refresh/logout are public; me requires a token)
	authHandler := NewAuthHandler(deps.AuthUC, deps.RefreshExpMinutes, deps.SecureCookie)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret, deps.UserRepo), authHandler.Me)

	// Everything below requires a valid Bearer token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.UserRepo))

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", RequirePermissions(domain.PermProductsView), productHandler.List)
	products.Post("/", RequirePermissions(domain.PermProductsCreate), productHandler.Create)
	products.Get("/:id", RequirePermissions(domain.PermProductsView), productHandler.GetByID)
	products.Put("/:id", RequirePermissions(domain.PermProductsUpdate), productHandler.Update)
	products.Delete("/:id", RequirePermissions(domain.PermProductsDelete), productHandler.Delete)

	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", RequirePermissions(domain.PermProductsView), warehouseHandler.List)
	warehouses.Post("/", RequirePermissions(domain.PermProductsCreate), warehouseHandler.Create)
	warehouses.Get("/:id", RequirePermissions(domain.PermProductsView), warehouseHandler.GetByID)

	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Get("/", RequirePermissions(domain.PermItemsView), itemHandler.List)
	items.Post("/", RequirePermissions(domain.PermItemsCreate), itemHandler.Create)
	items.Get("/:id", RequirePermissions(domain.PermItemsView), itemHandler.GetByID)
	items.Put("/:id", RequirePermissions(domain.PermItemsUpdate), itemHandler.Update)
	items.Delete("/:id", RequirePermissions(domain.PermItemsDelete), itemHandler.Delete)
	items.Post("/:id/move", RequirePermissions(domain.PermItemsMove), itemHandler.Move)
	items.Put("/:id/status", RequirePermissions(domain.PermItemsUpdate), itemHandler.UpdateStatus)
	items.Post("/:id/restore", RequirePermissions(domain.PermItemsRestore), itemHandler.Restore)

	protected.Get("/histories/items/:itemId/history", RequirePermissions(domain.PermHistoriesView), itemHandler.History)

	stocks := protected.Group("/stocks")
	stockHandler := NewStockHandler(deps.StockUC)
	stocks.Get("/", RequirePermissions(domain.PermStockView), stockHandler.List)
	stocks.Post("/in", RequirePermissions(domain.PermStockIn), stockHandler.In)
	stocks.Post("/out", RequirePermissions(domain.PermStockOut), stockHandler.Out)

	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", RequirePermissions(domain.PermUsersView), userHandler.List)
	users.Post("/", RequirePermissions(domain.PermUsersCreate), userHandler.Create)
	users.Get("/:id", RequirePermissions(domain.PermUsersView), userHandler.GetByID)
	users.Put("/:id", RequirePermissions(domain.PermUsersUpdate), userHandler.Update)
	users.Delete("/:id", RequirePermissions(domain.PermUsersDelete), userHandler.Disable)

	roles := protected.Group("/roles")
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles.Get("/", RequirePermissions(domain.PermRolesView), roleHandler.List)
	roles.Post("/", RequirePermissions(domain.PermRolesCreate), roleHandler.Create)
	roles.Get("/:id", RequirePermissions(domain.PermRolesView), roleHandler.GetByID)
	roles.Put("/:id", RequirePermissions(domain.PermRolesUpdate), roleHandler.Update)
	roles.Delete("/:id", RequirePermissions(domain.PermRolesDelete), roleHandler.Delete)

	auditHandler := NewAuditHandler(deps.AuditUC)
	protected.Get("/audit-logs", RequirePermissions(domain.PermAuditView), auditHandler.List)

	artacomGroup := protected.Group("/artacom")
	artacomHandler := NewArtacomHandler(deps.ArtacomUC)
	artacomGroup.Post("/sync", RequirePermissions(domain.PermArtacomSync), artacomHandler.Sync)
	artacomGroup.Get("/status", RequirePermissions(domain.PermArtacomView), artacomHandler.Status)
	artacomGroup.Get("/history", RequirePermissions(domain.PermArtacomView), artacomHandler.History)
	artacomGroup.Get("/inventory", RequirePermissions(domain.PermArtacomView), artacomHandler.Inventory)
}
