package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("authorization token required")
)

// DefaultTokenDuration is the absolute lifetime of a session token.
const DefaultTokenDuration = 7 * 24 * time.Hour

// Identity is the verified caller carried by a session token.
type Identity struct {
	UserID string
	Email  string
}

// Claims represents the custom JWT claims for a user session.
type Claims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTManager handles session token issuance and verification.
// The secret is fixed for the lifetime of the manager; tokens cannot be revoked
// before they expire.
type JWTManager struct {
	secretKey     []byte
	tokenDuration time.Duration
	now           func() time.Time
}

// Option configures a JWTManager.
type Option func(*JWTManager)

// WithClock overrides the time source used for issuing and verifying tokens.
func WithClock(now func() time.Time) Option {
	return func(m *JWTManager) {
		m.now = now
	}
}

// NewJWTManager creates a new JWT manager with the given secret and token duration.
// A non-positive tokenDuration falls back to DefaultTokenDuration.
func NewJWTManager(secretKey string, tokenDuration time.Duration, opts ...Option) (*JWTManager, error) {
	if secretKey == "" {
		return nil, errors.New("jwt secret must not be empty")
	}
	if tokenDuration <= 0 {
		tokenDuration = DefaultTokenDuration
	}

	m := &JWTManager{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Issue creates a signed token for the given user.
func (m *JWTManager) Issue(userID, email string) (string, error) {
	now := m.now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify parses and validates a token. Any failure (signature, algorithm,
// structure, expiry, missing identity) yields ErrInvalidToken.
func (m *JWTManager) Verify(tokenString string) (Identity, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			return m.secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Identity{}, ErrInvalidToken
	}
	if claims.UserID == "" || claims.Email == "" {
		return Identity{}, fmt.Errorf("%w: missing identity claims", ErrInvalidToken)
	}

	return Identity{UserID: claims.UserID, Email: claims.Email}, nil
}
