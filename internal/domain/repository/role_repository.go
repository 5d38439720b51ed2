package repository

import "github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/entity"

// RoleRepository defines the persistence port for Role.
type RoleRepository interface {
	Create(role *entity.Role) error
	GetByID(id string) (*entity.Role, error)
	GetByName(name string) (*entity.Role, error)
	Update(role *entity.Role) error
	List() ([]*entity.Role, error)
	Delete(id string) error
}
