package repository

import "github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/entity"

// UserRepository defines the persistence port for User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	// GetWithRole loads the user and its role in one query. The auth
	// middleware calls this on every request so revoked permissions take
	// effect immediately.
	GetWithRole(id string) (*entity.User, *entity.Role, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	CountByRole(roleID string) (int, error)
}
