package dto

// LoginRequest credentials for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse successful login payload. The refresh token is NOT part of
// the body; it travels only in an HTTP-only cookie.
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	User        UserResponse `json:"user"`
}

// RefreshResponse payload for POST /api/auth/refresh.
type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}
