package service

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/utilityportal/internal/auth"
	"github.com/mmynk/utilityportal/internal/metrics"
	"github.com/mmynk/utilityportal/internal/storage"
	"github.com/mmynk/utilityportal/internal/storage/memory"
)

const testSecret = "service-test-secret"

type testEnv struct {
	server   *httptest.Server
	store    storage.Store
	tokens   *auth.JWTManager
	metrics  *metrics.Metrics
	registry *prometheus.Registry
}

// setupTestServer serves the full router over store.
func setupTestServer(t *testing.T, store storage.Store, opts ...func(*Deps)) *testEnv {
	t.Helper()

	if store == nil {
		store = memory.New()
	}

	tokens, err := auth.NewJWTManager(testSecret, auth.DefaultTokenDuration)
	require.NoError(t, err)

	authenticator, err := auth.NewPasswordAuthenticator(store, bcrypt.MinCost)
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(reg, reg)

	deps := Deps{
		Store:         store,
		Authenticator: authenticator,
		Tokens:        tokens,
		Metrics:       m,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		CORSOrigin:    "http://localhost:5173",
	}
	for _, opt := range opts {
		opt(&deps)
	}

	server := httptest.NewServer(NewRouter(deps))
	t.Cleanup(server.Close)

	return &testEnv{server: server, store: store, tokens: tokens, metrics: m, registry: reg}
}

// do sends body as JSON (or verbatim when it is a string) and returns the
// response with its body already read.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, e.server.URL+path, reader)
	require.NoError(t, err)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

// register creates an account and returns its session token.
func (e *testEnv) register(t *testing.T, email, password string) string {
	t.Helper()

	resp, data := e.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))

	var out tokenResponse
	require.NoError(t, json.Unmarshal(data, &out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func decodeError(t *testing.T, data []byte) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(data, &body), string(data))
	return body.Error
}
