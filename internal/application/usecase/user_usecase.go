package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/audit"
	appauth "github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/auth"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/dto"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/entity"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/repository"
)

// UserUseCase user management (admin-gated).
type UserUseCase struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	auditor  *audit.Recorder
}

// NewUserUseCase builds the use case.
func NewUserUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository, auditor *audit.Recorder) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, roleRepo: roleRepo, auditor: auditor}
}

// Create registers a user with a bcrypt-hashed password.
// Returns ErrEmailAlreadyExists when the email is taken.
func (uc *UserUseCase) Create(actor audit.Actor, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	role, err := uc.roleRepo.GetByID(in.RoleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		RoleID:       in.RoleID,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	out := appauth.ToUserResponse(user, role)
	uc.auditor.Record(actor, "user", user.ID, entity.AuditActionCreate, nil, out, "user created")
	return out, nil
}

// Update changes profile, password, role or status. Users are never hard
// deleted; disabling sets status to inactive.
func (uc *UserUseCase) Update(actor audit.Actor, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	before := appauth.ToUserResponse(user, nil)

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.RoleID != "" {
		role, err := uc.roleRepo.GetByID(in.RoleID)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, domain.ErrNotFound
		}
		user.RoleID = in.RoleID
	}
	if in.Status != "" {
		if in.Status != entity.UserStatusActive && in.Status != entity.UserStatusInactive {
			return nil, domain.ErrInvalidInput
		}
		user.Status = in.Status
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	out := appauth.ToUserResponse(user, nil)
	uc.auditor.Record(actor, "user", user.ID, entity.AuditActionUpdate, before, out, "user updated")
	return out, nil
}

// Disable soft-disables a user (DELETE /api/users/:id). The row stays so
// the audit trail keeps a valid actor reference.
func (uc *UserUseCase) Disable(actor audit.Actor, id string) error {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if user.Status == entity.UserStatusInactive {
		return nil
	}
	before := appauth.ToUserResponse(user, nil)
	user.Status = entity.UserStatusInactive
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return err
	}
	uc.auditor.Record(actor, "user", user.ID, entity.AuditActionDelete, before, appauth.ToUserResponse(user, nil), "user disabled")
	return nil
}

// GetByID returns one user with its role.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, role, err := uc.userRepo.GetWithRole(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return appauth.ToUserResponse(user, role), nil
}

// List returns users with pagination.
func (uc *UserUseCase) List(limit, offset int) (*dto.UserListResponse, error) {
	users, err := uc.userRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.UserListResponse{Data: make([]dto.UserResponse, 0, len(users))}
	for _, u := range users {
		out.Data = append(out.Data, *appauth.ToUserResponse(u, nil))
	}
	return out, nil
}
