package domain

// Permission is an opaque permission token compared by exact match.
// The catalog below is closed: the route table references these constants
// so a typo fails at build time instead of silently denying access.
// Roles store permissions as plain strings; anything outside the catalog
// simply never matches a gate.
type Permission string

const (
	PermProductsView   Permission = "products.view"
	PermProductsCreate Permission = "products.create"
	PermProductsUpdate Permission = "products.update"
	PermProductsDelete Permission = "products.delete"

	PermItemsView    Permission = "items.view"
	PermItemsCreate  Permission = "items.create"
	PermItemsUpdate  Permission = "items.update"
	PermItemsDelete  Permission = "items.delete"
	PermItemsMove    Permission = "items.move"
	PermItemsRestore Permission = "items.restore"

	PermStockView Permission = "inventory.view"
	PermStockIn   Permission = "inventory.stock_in"
	PermStockOut  Permission = "inventory.stock_out"

	PermUsersView   Permission = "users.view"
	PermUsersCreate Permission = "users.create"
	PermUsersUpdate Permission = "users.update"
	PermUsersDelete Permission = "users.delete"

	PermRolesView   Permission = "roles.view"
	PermRolesCreate Permission = "roles.create"
	PermRolesUpdate Permission = "roles.update"
	PermRolesDelete Permission = "roles.delete"

	PermHistoriesView Permission = "histories.view"
	PermAuditView     Permission = "audit.view"

	PermArtacomSync Permission = "artacom.sync"
	PermArtacomView Permission = "artacom.view"
)

// AllPermissions lists the full catalog, used by the seeder for the admin role.
func AllPermissions() []Permission {
	return []Permission{
		PermProductsView, PermProductsCreate, PermProductsUpdate, PermProductsDelete,
		PermItemsView, PermItemsCreate, PermItemsUpdate, PermItemsDelete,
		PermItemsMove, PermItemsRestore,
		PermStockView, PermStockIn, PermStockOut,
		PermUsersView, PermUsersCreate, PermUsersUpdate, PermUsersDelete,
		PermRolesView, PermRolesCreate, PermRolesUpdate, PermRolesDelete,
		PermHistoriesView, PermAuditView,
		PermArtacomSync, PermArtacomView,
	}
}

// Strings converts a permission list to the plain-string form stored in roles.
func Strings(ps []Permission) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = string(p)
	}
	return out
}
