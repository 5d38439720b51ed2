package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/dto"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/entity"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/repository"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/pkg/jwt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret            string
	AccessExpMinutes  int
	RefreshExpMinutes int
	Issuer            string
}

// AuthUseCase authentication flows: login, refresh, me.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase builds the auth use case.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifies email/password and returns the access token plus the
// refresh token. The handler puts the refresh token in an HTTP-only cookie;
// it never appears in the response body.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, string, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, "", domain.ErrUnauthorized
	}
	if !user.IsActive() {
		return nil, "", domain.ErrForbidden
	}
	access, err := jwt.GenerateAccess(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.AccessExpMinutes)
	if err != nil {
		return nil, "", err
	}
	refresh, err := jwt.GenerateRefresh(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.RefreshExpMinutes)
	if err != nil {
		return nil, "", err
	}
	return &dto.LoginResponse{
		AccessToken: access,
		User:        *ToUserResponse(user, nil),
	}, refresh, nil
}

// Refresh exchanges a valid refresh token (from the cookie) for a new
// access token. The user must still exist and be active: a disabled account
// cannot renew its session.
func (uc *AuthUseCase) Refresh(refreshToken string) (*dto.RefreshResponse, error) {
	userID, err := jwt.Parse(uc.jwtCfg.Secret, refreshToken, jwt.TypeRefresh)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive() {
		return nil, domain.ErrUnauthorized
	}
	access, err := jwt.GenerateAccess(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.AccessExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.RefreshResponse{AccessToken: access}, nil
}

// Me returns the acting user with its role name and permission set.
func (uc *AuthUseCase) Me(userID string) (*dto.UserResponse, error) {
	user, role, err := uc.userRepo.GetWithRole(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return ToUserResponse(user, role), nil
}

// ToUserResponse maps a user (and optionally its role) to the API shape.
func ToUserResponse(u *entity.User, role *entity.Role) *dto.UserResponse {
	if u == nil {
		return nil
	}
	out := &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		RoleID:    u.RoleID,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if role != nil {
		out.RoleName = role.Name
		out.Permissions = role.Permissions
	}
	return out
}
