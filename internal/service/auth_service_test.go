package service

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/utilityportal/internal/storage/memory"
)

func TestRegisterThenMe(t *testing.T) {
	env := setupTestServer(t, nil)

	token := env.register(t, "alice@example.test", "Secret123!")

	resp, data := env.do(t, http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))

	var me map[string]any
	require.NoError(t, json.Unmarshal(data, &me))
	assert.Equal(t, "alice@example.test", me["email"])
	assert.NotEmpty(t, me["id"])
	assert.Contains(t, me, "firstName")
	assert.NotContains(t, me, "passwordHash")
	assert.NotContains(t, string(data), "$2a$", "password hash must never be serialized")
}

func TestRegister_StoresProfile(t *testing.T) {
	env := setupTestServer(t, nil)

	resp, data := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":     "bob@example.test",
		"password":  "hunter22",
		"firstName": "Bob",
		"lastName":  "",
		"address":   "2 Mains Street, SE1 9XX",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))

	var out tokenResponse
	require.NoError(t, json.Unmarshal(data, &out))

	_, data = env.do(t, http.MethodGet, "/api/me", out.Token, nil)
	assert.JSONEq(t, `{
		"id": "`+mustUserID(t, env, "bob@example.test")+`",
		"email": "bob@example.test",
		"firstName": "Bob",
		"lastName": null,
		"address": "2 Mains Street, SE1 9XX"
	}`, string(data))
}

func mustUserID(t *testing.T, env *testEnv, email string) string {
	t.Helper()
	user, err := env.store.GetUserByEmail(t.Context(), email)
	require.NoError(t, err)
	return user.ID
}

func TestRegister_TokenVerifies(t *testing.T) {
	env := setupTestServer(t, nil)

	token := env.register(t, "carol@example.test", "Secret123!")

	identity, err := env.tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "carol@example.test", identity.Email)
	assert.Equal(t, mustUserID(t, env, "carol@example.test"), identity.UserID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	env := setupTestServer(t, nil)
	env.register(t, "alice@example.test", "Secret123!")

	for _, pw := range []string{"Secret123!", "different", "z"} {
		resp, data := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
			"email":    "alice@example.test",
			"password": pw,
		})
		assert.Equal(t, http.StatusConflict, resp.StatusCode, "password %q", pw)
		assert.Equal(t, "Email already registered", decodeError(t, data))
	}
}

func TestRegister_InvalidInput(t *testing.T) {
	env := setupTestServer(t, nil)

	tests := []struct {
		name    string
		body    any
		wantMsg string
	}{
		{"missing password", map[string]any{"email": "a@example.test"}, "Email and password required"},
		{"missing email", map[string]any{"password": "Secret123!"}, "Email and password required"},
		{"empty body object", map[string]any{}, "Email and password required"},
		{"not json", "email=a", "Invalid request body"},
		{"wrong types", `{"email": 42, "password": true}`, "Invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, data := env.do(t, http.MethodPost, "/api/auth/register", "", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tt.wantMsg, decodeError(t, data))
		})
	}
}

func TestLogin(t *testing.T) {
	env := setupTestServer(t, nil)
	env.register(t, "alice@example.test", "Secret123!")

	t.Run("correct credentials return a working token", func(t *testing.T) {
		resp, data := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
			"email":    "alice@example.test",
			"password": "Secret123!",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode, string(data))

		var out tokenResponse
		require.NoError(t, json.Unmarshal(data, &out))

		resp, _ = env.do(t, http.MethodGet, "/api/me", out.Token, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	tests := []struct {
		name string
		body map[string]any
	}{
		{"wrong password", map[string]any{"email": "alice@example.test", "password": "wrong"}},
		{"unknown email", map[string]any{"email": "nobody@example.test", "password": "Secret123!"}},
		{"email differs in case", map[string]any{"email": "Alice@example.test", "password": "Secret123!"}},
		{"missing password", map[string]any{"email": "alice@example.test"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, data := env.do(t, http.MethodPost, "/api/auth/login", "", tt.body)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.JSONEq(t, `{"error": "Invalid credentials"}`, string(data))
		})
	}
}

func TestMe_UnknownUser(t *testing.T) {
	env := setupTestServer(t, nil)

	// A validly signed token for an account that is not in the store.
	token, err := env.tokens.Issue("ghost-id", "ghost@example.test")
	require.NoError(t, err)

	resp, data := env.do(t, http.MethodGet, "/api/me", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "User not found", decodeError(t, data))
}

func TestStoreFailure_IsServerError(t *testing.T) {
	store := memory.New()
	env := setupTestServer(t, store)
	token := env.register(t, "alice@example.test", "Secret123!")

	store.SetFailure(errors.New("database disk image is malformed"))

	for _, path := range []string{"/api/me", "/api/bills", "/api/meter-readings", "/api/incidents"} {
		t.Run(path, func(t *testing.T) {
			resp, data := env.do(t, http.MethodGet, path, token, nil)
			assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
			assert.Equal(t, "Server error", decodeError(t, data))
			assert.NotContains(t, string(data), "malformed")
		})
	}

	t.Run("login", func(t *testing.T) {
		resp, data := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
			"email": "alice@example.test", "password": "Secret123!",
		})
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "Server error", decodeError(t, data))
	})
}
