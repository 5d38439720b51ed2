package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/auth"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/dto"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/entity"
	pkgjwt "github.com/Ahmad-Rizki21/InventorySaS-sub001/pkg/jwt"
)

type stubUserRepo struct {
	user *entity.User
	role *entity.Role
}

func (s *stubUserRepo) Create(*entity.User) error { return nil }
func (s *stubUserRepo) GetByID(id string) (*entity.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, nil
}
func (s *stubUserRepo) GetByEmail(email string) (*entity.User, error) {
	if s.user != nil && s.user.Email == email {
		return s.user, nil
	}
	return nil, nil
}
func (s *stubUserRepo) GetWithRole(id string) (*entity.User, *entity.Role, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, s.role, nil
	}
	return nil, nil, nil
}
func (s *stubUserRepo) Update(*entity.User) error             { return nil }
func (s *stubUserRepo) List(int, int) ([]*entity.User, error) { return nil, nil }
func (s *stubUserRepo) CountByRole(string) (int, error)       { return 0, nil }

var testJWT = auth.JWTConfig{
	Secret:            "test-secret-key-for-unit-tests",
	AccessExpMinutes:  60,
	RefreshExpMinutes: 120,
	Issuer:            "inventory-test",
}

func newAuthFixture(t *testing.T) (*auth.AuthUseCase, *stubUserRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &stubUserRepo{
		user: &entity.User{
			ID: "u1", Email: "budi@example.com", PasswordHash: string(hash),
			Name: "Budi", Status: entity.UserStatusActive,
		},
		role: &entity.Role{ID: "r1", Name: "admin", Permissions: []string{"items.view"}},
	}
	return auth.NewAuthUseCase(repo, testJWT), repo
}

func TestLogin_ReturnsAccessTokenAndRefreshCookie(t *testing.T) {
	uc, _ := newAuthFixture(t)

	out, refresh, err := uc.Login(dto.LoginRequest{Email: "budi@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, "budi@example.com", out.User.Email)

	// Both tokens must parse as their own type only.
	userID, err := pkgjwt.Parse(testJWT.Secret, out.AccessToken, pkgjwt.TypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)

	userID, err = pkgjwt.Parse(testJWT.Secret, refresh, pkgjwt.TypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
}

func TestLogin_WrongPasswordRejected(t *testing.T) {
	uc, _ := newAuthFixture(t)
	_, _, err := uc.Login(dto.LoginRequest{Email: "budi@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UnknownEmailRejected(t *testing.T) {
	uc, _ := newAuthFixture(t)
	_, _, err := uc.Login(dto.LoginRequest{Email: "nobody@example.com", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_InactiveAccountRejected(t *testing.T) {
	uc, repo := newAuthFixture(t)
	repo.user.Status = entity.UserStatusInactive
	_, _, err := uc.Login(dto.LoginRequest{Email: "budi@example.com", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRefresh_IssuesNewAccessToken(t *testing.T) {
	uc, _ := newAuthFixture(t)
	_, refresh, err := uc.Login(dto.LoginRequest{Email: "budi@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	out, err := uc.Refresh(refresh)
	require.NoError(t, err)
	userID, err := pkgjwt.Parse(testJWT.Secret, out.AccessToken, pkgjwt.TypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
}

// An access token presented to the refresh endpoint must be rejected.
func TestRefresh_AccessTokenRejected(t *testing.T) {
	uc, _ := newAuthFixture(t)
	out, _, err := uc.Login(dto.LoginRequest{Email: "budi@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	_, err = uc.Refresh(out.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// A disabled account cannot renew its session even with a valid refresh
// token.
func TestRefresh_DisabledAccountRejected(t *testing.T) {
	uc, repo := newAuthFixture(t)
	_, refresh, err := uc.Login(dto.LoginRequest{Email: "budi@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	repo.user.Status = entity.UserStatusInactive
	_, err = uc.Refresh(refresh)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestMe_ReturnsRoleAndPermissions(t *testing.T) {
	uc, _ := newAuthFixture(t)
	out, err := uc.Me("u1")
	require.NoError(t, err)
	assert.Equal(t, "admin", out.RoleName)
	assert.Equal(t, []string{"items.view"}, out.Permissions)
}

func TestMe_UnknownUserRejected(t *testing.T) {
	uc, _ := newAuthFixture(t)
	_, err := uc.Me("missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
