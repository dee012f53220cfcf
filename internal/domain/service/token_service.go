package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService issues and validates authentication tokens
type TokenService interface {
	// GenerateTokens returns a short-lived access token and a refresh token
	// for the given user.
	GenerateTokens(userID uuid.UUID) (accessToken string, refreshToken string, err error)
	// ValidateToken parses and verifies a signed token string.
	ValidateToken(tokenString string, secretKey string) (*jwt.Token, error)
}
