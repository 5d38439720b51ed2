package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/entity"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implements RoleRepository over PostgreSQL. Permissions are
// stored as a text[] column and scanned straight into []string.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository builds the role persistence adapter.
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// Create persists a new role.
func (r *RoleRepo) Create(role *entity.Role) error {
	query := `
		INSERT INTO roles (id, name, permissions, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		role.ID, role.Name, role.Permissions, role.CreatedAt, role.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// GetByID fetches a role by id.
func (r *RoleRepo) GetByID(id string) (*entity.Role, error) {
	return r.get(`WHERE id = $1`, id)
}

// GetByName fetches a role by its unique name.
func (r *RoleRepo) GetByName(name string) (*entity.Role, error) {
	return r.get(`WHERE name = $1`, name)
}

func (r *RoleRepo) get(where string, arg any) (*entity.Role, error) {
	query := `
		SELECT id, name, permissions, created_at, updated_at
		FROM roles ` + where
	var role entity.Role
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&role.ID, &role.Name, &role.Permissions, &role.CreatedAt, &role.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return &role, nil
}

// Update persists name/permission changes.
func (r *RoleRepo) Update(role *entity.Role) error {
	query := `
		UPDATE roles SET name = $2, permissions = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		role.ID, role.Name, role.Permissions, role.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update role: %w", err)
	}
	return nil
}

// List returns all roles.
func (r *RoleRepo) List() ([]*entity.Role, error) {
	query := `
		SELECT id, name, permissions, created_at, updated_at
		FROM roles ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Permissions, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	return list, rows.Err()
}

// Delete removes a role by id. The use case rejects roles still in use
// before calling this.
func (r *RoleRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrRoleInUse
		}
		return fmt.Errorf("delete role: %w", err)
	}
	return nil
}
