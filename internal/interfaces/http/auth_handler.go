package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/auth"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/dto"
)

// refreshCookie is the HTTP-only cookie carrying the refresh token. It is
// scoped to the auth routes so it never travels with regular API calls.
const refreshCookie = "refresh_token"

// AuthHandler login, refresh, logout and the current-user endpoint.
type AuthHandler struct {
	uc                *auth.AuthUseCase
	refreshExpMinutes int
	secureCookie      bool
}

// NewAuthHandler builds the auth handler. secureCookie should be true in
// production (cookie only over HTTPS).
func NewAuthHandler(uc *auth.AuthUseCase, refreshExpMinutes int, secureCookie bool) *AuthHandler {
	return &AuthHandler{uc: uc, refreshExpMinutes: refreshExpMinutes, secureCookie: secureCookie}
}

// Login godoc
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email and password are required"})
	}
	out, refresh, err := h.uc.Login(in)
	if err != nil {
		return fail(c, err)
	}
	h.setRefreshCookie(c, refresh)
	return c.JSON(out)
}

// Refresh godoc
// @Summary      Renew the access token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.RefreshResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	refresh := c.Cookies(refreshCookie)
	if refresh == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "refresh cookie required"})
	}
	out, err := h.uc.Refresh(refresh)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Log out (clears the refresh cookie)
// @Tags         auth
// @Produce      json
// @Success      204
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     refreshCookie,
		Value:    "",
		Path:     "/api/auth",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
	return c.SendStatus(fiber.StatusNoContent)
}

// Me godoc
// @Summary      Current user with role and permissions
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "not authenticated"})
	}
	out, err := h.uc.Me(user.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

func (h *AuthHandler) setRefreshCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     refreshCookie,
		Value:    token,
		Path:     "/api/auth",
		Expires:  time.Now().Add(time.Duration(h.refreshExpMinutes) * time.Minute),
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}
