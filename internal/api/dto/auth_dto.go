package dto

import (
	"time"

	"github.com/spec-kit/flight-service/internal/domain"
	"github.com/spec-kit/flight-service/internal/token"
)

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest payload for exchanging a refresh token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// LogoutRequest carries the token pair to invalidate.
type LogoutRequest struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// TokenPairResponse returns both issued tokens with their expiries.
type TokenPairResponse struct {
	AccessToken      string    `json:"access_token"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshToken     string    `json:"refresh_token"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

// NewTokenPairResponse maps an issued pair.
func NewTokenPairResponse(pair *token.Pair) TokenPairResponse {
	return TokenPairResponse{
		AccessToken:      pair.Access.Raw,
		AccessExpiresAt:  pair.Access.ExpiresAt,
		RefreshToken:     pair.Refresh.Raw,
		RefreshExpiresAt: pair.Refresh.ExpiresAt,
	}
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        string      `json:"id"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
}

// NewUserResponse maps a domain user.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      user.Role,
	}
}
