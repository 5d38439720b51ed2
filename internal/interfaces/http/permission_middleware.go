package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/dto"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain"
)

// RequirePermissions gates a route on the caller's role holding every listed
// permission. A rejection names the missing permissions so the client can
// show which grant to ask for; runs after AuthMiddleware.
func RequirePermissions(perms ...domain.Permission) fiber.Handler {
	wanted := domain.Strings(perms)
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "no role assigned",
				Missing: wanted,
			})
		}
		if missing := role.MissingPermissions(wanted); len(missing) > 0 {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "missing permission",
				Missing: missing,
			})
		}
		return c.Next()
	}
}

// RequireRole gates a route on the caller's role name being one of the
// listed names. Permission gates are preferred; this exists for routes that
// are about who you are rather than what you may do (e.g. admin-only tooling).
func RequireRole(names ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role != nil {
			for _, name := range names {
				if role.Name == name {
					return c.Next()
				}
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "role not allowed",
		})
	}
}

// RequireAnyPermission gates a route on the caller holding at least one of
// the listed permissions. On rejection Missing lists the full alternative set.
func RequireAnyPermission(perms ...domain.Permission) fiber.Handler {
	wanted := domain.Strings(perms)
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role != nil {
			for _, p := range wanted {
				if role.HasPermission(p) {
					return c.Next()
				}
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "missing permission",
			Missing: wanted,
		})
	}
}
