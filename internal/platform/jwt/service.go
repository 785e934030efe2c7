// Package jwtmw provides JWT issuance, validation and the gin auth middleware.
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the token lifetime used when no explicit configuration is given.
const DefaultTTL = 24 * time.Hour

// ErrInvalidToken is returned for any token that fails validation: bad
// signature, malformed payload or elapsed expiry. Callers branch on the
// result; validation never panics.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the identity claims carried by a validated token.
type Claims struct {
	UserID    uint
	Email     string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Generator defines the interface for JWT token generation.
type Generator interface {
	// GenerateToken creates a signed JWT token for the given user.
	GenerateToken(userID uint, email, role string) (string, error)
}

// Validator defines the interface for JWT token validation.
type Validator interface {
	// Validate parses and verifies a token, returning its claims on success.
	Validate(token string) (*Claims, error)
}

// Service implements Generator and Validator over a shared signing secret.
// The secret is process-wide configuration, loaded once at startup.
type Service struct {
	secret     []byte
	expiration time.Duration
}

// NewService creates a new JWT service with the provided secret and expiration duration.
func NewService(secret string, expiration time.Duration) *Service {
	if expiration <= 0 {
		expiration = DefaultTTL
	}
	return &Service{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// GenerateToken creates a signed JWT token with standard claims.
func (s *Service) GenerateToken(userID uint, email, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"exp":   now.Add(s.expiration).Unix(),
		"iat":   now.Unix(),
		"email": email,
		"role":  role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Validate parses and verifies a token string.
// It fails with ErrInvalidToken when the signature does not verify, the
// payload is malformed or the expiry has elapsed.
func (s *Service) Validate(tokenStr string) (*Claims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Check signing algorithm (only HMAC allowed)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok := mapClaims["sub"].(float64) // JWT numbers are decoded as float64
	if !ok {
		return nil, ErrInvalidToken
	}
	email, ok := mapClaims["email"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	role, _ := mapClaims["role"].(string)

	claims := &Claims{
		UserID: uint(sub),
		Email:  email,
		Role:   role,
	}
	if iat, ok := mapClaims["iat"].(float64); ok {
		claims.IssuedAt = time.Unix(int64(iat), 0)
	}
	if exp, ok := mapClaims["exp"].(float64); ok {
		claims.ExpiresAt = time.Unix(int64(exp), 0)
	}

	return claims, nil
}
