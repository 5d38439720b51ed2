package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/audit"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/dto"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/entity"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/repository"
)

// RoleUseCase role and permission management. Because the auth middleware
// reloads the role on every request, changes here apply to logged-in
// holders on their very next call.
type RoleUseCase struct {
	roleRepo repository.RoleRepository
	userRepo repository.UserRepository
	auditor  *audit.Recorder
}

// NewRoleUseCase builds the use case.
func NewRoleUseCase(roleRepo repository.RoleRepository, userRepo repository.UserRepository, auditor *audit.Recorder) *RoleUseCase {
	return &RoleUseCase{roleRepo: roleRepo, userRepo: userRepo, auditor: auditor}
}

// Create adds a role with its permission strings.
func (uc *RoleUseCase) Create(actor audit.Actor, in dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.roleRepo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	role := &entity.Role{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Permissions: in.Permissions,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.roleRepo.Create(role); err != nil {
		return nil, err
	}
	out := toRoleResponse(role)
	uc.auditor.Record(actor, "role", role.ID, entity.AuditActionCreate, nil, out, "role created")
	return out, nil
}

// Update renames a role and/or replaces its permission set.
func (uc *RoleUseCase) Update(actor audit.Actor, id string, in dto.UpdateRoleRequest) (*dto.RoleResponse, error) {
	role, err := uc.roleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}
	before := toRoleResponse(role)
	if in.Name != "" && in.Name != role.Name {
		existing, err := uc.roleRepo.GetByName(in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		role.Name = in.Name
	}
	if in.Permissions != nil {
		role.Permissions = in.Permissions
	}
	role.UpdatedAt = time.Now()
	if err := uc.roleRepo.Update(role); err != nil {
		return nil, err
	}
	out := toRoleResponse(role)
	uc.auditor.Record(actor, "role", role.ID, entity.AuditActionUpdate, before, out, "role updated")
	return out, nil
}

// Delete removes a role. A role still assigned to users is rejected with
// ErrRoleInUse instead of cascading.
func (uc *RoleUseCase) Delete(actor audit.Actor, id string) error {
	role, err := uc.roleRepo.GetByID(id)
	if err != nil {
		return err
	}
	if role == nil {
		return domain.ErrNotFound
	}
	count, err := uc.userRepo.CountByRole(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrRoleInUse
	}
	if err := uc.roleRepo.Delete(id); err != nil {
		return err
	}
	uc.auditor.Record(actor, "role", id, entity.AuditActionDelete, toRoleResponse(role), nil, "role deleted")
	return nil
}

// GetByID returns one role.
func (uc *RoleUseCase) GetByID(id string) (*dto.RoleResponse, error) {
	role, err := uc.roleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, nil
	}
	return toRoleResponse(role), nil
}

// List returns all roles.
func (uc *RoleUseCase) List() (*dto.RoleListResponse, error) {
	roles, err := uc.roleRepo.List()
	if err != nil {
		return nil, err
	}
	out := &dto.RoleListResponse{Data: make([]dto.RoleResponse, 0, len(roles))}
	for _, r := range roles {
		out.Data = append(out.Data, *toRoleResponse(r))
	}
	return out, nil
}

func toRoleResponse(r *entity.Role) *dto.RoleResponse {
	if r == nil {
		return nil
	}
	return &dto.RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Permissions: r.Permissions,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
