package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token types carried in the "typ" claim. Refresh tokens are only accepted
// by the refresh endpoint; access tokens everywhere else.
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// ErrInvalidToken is the single failure outcome for verification: malformed
// token, wrong signature, expiry and wrong token type all collapse into it
// so callers cannot distinguish why a token was rejected.
var ErrInvalidToken = fmt.Errorf("jwt: invalid or expired token")

// Claims includes the standard JWT claims plus the application fields.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	TokenType string `json:"typ"`
}

// GenerateAccess signs a short-lived access token carrying the user id.
// Verification is stateless; there is no server-side session table.
func GenerateAccess(secret, userID, issuer string, expMinutes int) (string, error) {
	return generate(secret, userID, issuer, TypeAccess, expMinutes)
}

// GenerateRefresh signs a longer-lived refresh token. It is delivered only
// via an HTTP-only cookie and never handed to front-end code.
func GenerateRefresh(secret, userID, issuer string, expMinutes int) (string, error) {
	return generate(secret, userID, issuer, TypeRefresh, expMinutes)
}

func generate(secret, userID, issuer, tokenType string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: empty secret")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:    userID,
		TokenType: tokenType,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse validates the token and returns the user id. wantType must be
// TypeAccess or TypeRefresh; a mismatch is rejected like any invalid token.
func Parse(secret, tokenString, wantType string) (userID string, err error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: empty secret")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.TokenType != wantType {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}
