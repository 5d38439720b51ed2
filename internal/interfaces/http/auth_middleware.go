package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/audit"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/dto"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/entity"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/repository"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/pkg/jwt"
)

// Locals keys set by the auth middleware.
const (
	LocalUser = "auth_user"
	LocalRole = "auth_role"
)

// AuthMiddleware validates the Bearer access token and loads the acting user
// with its role into c.Locals. The user is reloaded from the database on
// every request: a disabled account or a permission taken away applies on
// the very next call, not when the token expires.
func AuthMiddleware(jwtSecret string, userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header required"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "format: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "empty token"})
		}
		userID, err := jwt.Parse(jwtSecret, tokenString, jwt.TypeAccess)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "invalid or expired token"})
		}
		user, role, err := userRepo.GetWithRole(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		if user == nil || !user.IsActive() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "account not found or disabled"})
		}
		c.Locals(LocalUser, user)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// GetUser returns the acting user set by the auth middleware.
func GetUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalUser).(*entity.User)
	return u
}

// GetRole returns the acting user's role set by the auth middleware.
func GetRole(c *fiber.Ctx) *entity.Role {
	r, _ := c.Locals(LocalRole).(*entity.Role)
	return r
}

// GetActor returns the acting user as an audit actor.
func GetActor(c *fiber.Ctx) audit.Actor {
	u := GetUser(c)
	if u == nil {
		return audit.Actor{}
	}
	return audit.Actor{ID: u.ID, Name: u.Name}
}
