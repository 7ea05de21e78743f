package service

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/mmynk/utilityportal/internal/apperr"
	"github.com/mmynk/utilityportal/internal/auth"
	"github.com/mmynk/utilityportal/internal/httpx"
	"github.com/mmynk/utilityportal/internal/metrics"
	"github.com/mmynk/utilityportal/internal/middleware"
	"github.com/mmynk/utilityportal/internal/storage"
)

// TokenManager issues and verifies session tokens.
type TokenManager interface {
	TokenIssuer
	middleware.TokenVerifier
}

// Deps are the components the HTTP API is assembled from.
type Deps struct {
	Store         storage.Store
	Authenticator auth.Authenticator
	Tokens        TokenManager
	Metrics       *metrics.Metrics
	Logger        *slog.Logger

	// CORSOrigin is the browser origin allowed to call the API.
	CORSOrigin string
	// StaticDir, when set, serves the built frontend and /mock/ files.
	StaticDir string
}

// NewRouter wires every route onto a ServeMux and wraps it with the
// logging, security-header and CORS middleware.
func NewRouter(d Deps) http.Handler {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}

	authSvc := NewAuthService(d.Authenticator, d.Tokens, d.Store, logger)
	billSvc := NewBillService(d.Store, logger)
	readingSvc := NewMeterReadingService(d.Store, logger)
	incidentSvc := NewIncidentService(d.Store, logger)
	outageSvc := NewOutageService(logger)

	requireAuth := middleware.RequireAuth(d.Tokens, d.Metrics)

	mux := http.NewServeMux()
	public := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, middleware.Instrument(d.Metrics, pattern, h))
	}
	protected := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, middleware.Instrument(d.Metrics, pattern, requireAuth(h)))
	}

	public("POST /api/auth/register", authSvc.Register)
	public("POST /api/auth/login", authSvc.Login)

	protected("GET /api/me", authSvc.Me)
	protected("GET /api/bills", billSvc.List)
	protected("GET /api/meter-readings", readingSvc.List)
	protected("POST /api/meter-readings", readingSvc.Submit)
	protected("GET /api/incidents", incidentSvc.List)
	protected("POST /api/incidents", incidentSvc.Report)
	protected("GET /api/outages", outageSvc.List)

	mux.HandleFunc("GET /healthz", healthHandler(d.Store, logger))
	if d.Metrics != nil {
		mux.Handle("GET /metrics", d.Metrics.Handler())
	}

	// Unknown API paths get a JSON 404 rather than the frontend.
	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteError(w, apperr.NotFound("Not found"))
	})

	if d.StaticDir != "" {
		static, err := newStaticHandler(d.StaticDir)
		if err != nil {
			logger.Error("Static files disabled", "dir", d.StaticDir, "error", err)
		} else {
			logger.Info("Serving static files", "path", static.dir)
			mux.Handle("/", static)
		}
	}

	return middleware.Chain(mux,
		middleware.Logging(logger),
		middleware.SecurityHeaders,
		middleware.CORS(d.CORSOrigin),
	)
}

type pinger interface {
	Ping(ctx context.Context) error
}

func healthHandler(store storage.Store, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if p, ok := store.(pinger); ok {
			if err := p.Ping(r.Context()); err != nil {
				logger.Error("Health check failed", "error", err)
				httpx.WriteJSON(w, http.StatusServiceUnavailable, httpx.ErrorBody{Error: "Database unavailable"})
				return
			}
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
