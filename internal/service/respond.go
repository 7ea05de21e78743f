package service

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mmynk/utilityportal/internal/apperr"
	"github.com/mmynk/utilityportal/internal/auth"
	"github.com/mmynk/utilityportal/internal/httpx"
	"github.com/mmynk/utilityportal/internal/middleware"
)

const msgInvalidBody = "Invalid request body"

// fail writes err to the client. Server errors are logged with their cause
// and reach the client only as the generic message.
func fail(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	if apperr.KindOf(err) == apperr.KindServer {
		var appErr *apperr.Error
		if !errors.As(err, &appErr) {
			err = apperr.Server(err)
		}
		logger.Error("Request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"user_id", middleware.GetUserID(r.Context()),
			"error", err,
		)
	}
	httpx.WriteError(w, err)
}

// requireIdentity returns the caller verified by the auth gate.
// Handlers mounted without the gate fail closed.
func requireIdentity(r *http.Request) (auth.Identity, error) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		return auth.Identity{}, apperr.Unauthenticated(middleware.MsgMissingToken)
	}
	return id, nil
}

// optional maps a missing or blank optional field to nil.
func optional(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
