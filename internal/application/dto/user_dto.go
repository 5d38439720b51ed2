package dto

import "time"

// CreateUserRequest admin-created account.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	RoleID   string `json:"role_id"`
}

// UpdateUserRequest profile/role/status update. Empty fields are kept.
type UpdateUserRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	RoleID   string `json:"role_id"`
	Status   string `json:"status"` // active, inactive (soft-disable)
}

// UserResponse user payload; never carries the password hash.
type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	RoleID      string    `json:"role_id"`
	RoleName    string    `json:"role_name,omitempty"`
	Permissions []string  `json:"permissions,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UserListResponse paged user listing.
type UserListResponse struct {
	Data []UserResponse `json:"data"`
}
