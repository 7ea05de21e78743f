package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-please-change"

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestManager(t *testing.T, now time.Time) *JWTManager {
	t.Helper()
	m, err := NewJWTManager(testSecret, DefaultTokenDuration, WithClock(fixedClock(now)))
	require.NoError(t, err)
	return m
}

func TestNewJWTManager_RequiresSecret(t *testing.T) {
	_, err := NewJWTManager("", time.Hour)
	assert.Error(t, err)
}

func TestNewJWTManager_DefaultsDuration(t *testing.T) {
	m, err := NewJWTManager(testSecret, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultTokenDuration, m.tokenDuration)
}

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)
	m := newTestManager(t, issuedAt)

	tok, err := m.Issue("user-123", "alice@example.test")
	require.NoError(t, err)

	identity, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, Identity{UserID: "user-123", Email: "alice@example.test"}, identity)
}

func TestVerify_ClaimsCarryPayloadFields(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)
	m := newTestManager(t, issuedAt)

	tok, err := m.Issue("user-123", "alice@example.test")
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(tok, claims)
	require.NoError(t, err)

	assert.Equal(t, "user-123", claims["id"])
	assert.Equal(t, "alice@example.test", claims["email"])
	assert.EqualValues(t, issuedAt.Unix(), claims["iat"])
	assert.EqualValues(t, issuedAt.Add(7*24*time.Hour).Unix(), claims["exp"])
}

func TestVerify_Expiry(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)
	issuer := newTestManager(t, issuedAt)
	tok, err := issuer.Issue("user-1", "u1@example.test")
	require.NoError(t, err)

	t.Run("valid just before expiry", func(t *testing.T) {
		verifier := newTestManager(t, issuedAt.Add(DefaultTokenDuration-time.Second))
		_, err := verifier.Verify(tok)
		assert.NoError(t, err)
	})

	t.Run("rejected after expiry", func(t *testing.T) {
		verifier := newTestManager(t, issuedAt.Add(DefaultTokenDuration+time.Second))
		_, err := verifier.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestVerify_Rejects(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)
	m := newTestManager(t, now)

	valid, err := m.Issue("user-1", "u1@example.test")
	require.NoError(t, err)

	other, err := NewJWTManager("a-different-secret", time.Hour, WithClock(fixedClock(now)))
	require.NoError(t, err)
	foreign, err := other.Issue("user-1", "u1@example.test")
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		UserID: "user-1",
		Email:  "u1@example.test",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: "user-1",
		Email:  "u1@example.test",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noIdentity, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	parts := strings.Split(valid, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	tests := []struct {
		name  string
		token string
	}{
		{"wrong secret", foreign},
		{"alg none", noneToken},
		{"missing expiry", noExpiry},
		{"missing identity", noIdentity},
		{"tampered payload", tampered},
		{"malformed", "not.a.jwt"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
