// Package auth provides JWT issuance and validation for the API.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when token validation fails for any reason,
// including expiry.
var ErrInvalidToken = errors.New("auth: invalid token")

// ErrInvalidCredentials is returned by Authenticate on a bad password.
var ErrInvalidCredentials = errors.New("auth: invalid credentials")

// Claims are the JWT claims issued by this service.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 access tokens.
type TokenService struct {
	secret   []byte
	duration time.Duration
}

// NewTokenService creates a TokenService signing with secret; issued tokens
// expire after duration.
func NewTokenService(secret string, duration time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), duration: duration}
}

// Authenticate checks the demo credential and issues a token for username.
// TODO: replace the fixed password with a real user store when one exists.
func (s *TokenService) Authenticate(username, password string) (string, error) {
	if password != "admin" {
		return "", ErrInvalidCredentials
	}
	return s.GenerateToken(username)
}

// GenerateToken issues a signed token with the subject set to username.
func (s *TokenService) GenerateToken(username string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken parses and verifies a token string and returns its claims.
func (s *TokenService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
