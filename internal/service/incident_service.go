package service

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/mmynk/utilityportal/internal/apperr"
	"github.com/mmynk/utilityportal/internal/httpx"
	"github.com/mmynk/utilityportal/internal/models"
	"github.com/mmynk/utilityportal/internal/storage"
)

const msgTypeRequired = "Type is required"

// IncidentService records and lists the caller's incident reports.
type IncidentService struct {
	store  storage.IncidentStore
	logger *slog.Logger
}

// NewIncidentService creates a new IncidentService with the given storage backend.
func NewIncidentService(store storage.IncidentStore, logger *slog.Logger) *IncidentService {
	return &IncidentService{store: store, logger: logger}
}

type incidentRequest struct {
	Type        string  `json:"type"`
	Description *string `json:"description"`
	Postcode    *string `json:"postcode"`
}

func (req incidentRequest) Validate() error {
	if strings.TrimSpace(req.Type) == "" {
		return apperr.InvalidInput(msgTypeRequired)
	}
	return nil
}

// Report records a new incident for the caller.
func (s *IncidentService) Report(w http.ResponseWriter, r *http.Request) {
	id, err := requireIdentity(r)
	if err != nil {
		fail(w, r, s.logger, err)
		return
	}

	var req incidentRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		fail(w, r, s.logger, apperr.InvalidInput(msgInvalidBody))
		return
	}
	if err := req.Validate(); err != nil {
		fail(w, r, s.logger, err)
		return
	}

	incident := &models.Incident{
		UserID:      id.UserID,
		Type:        strings.TrimSpace(req.Type),
		Description: optional(req.Description),
		Postcode:    optional(req.Postcode),
	}
	if err := s.store.CreateIncident(r.Context(), incident); err != nil {
		fail(w, r, s.logger, err)
		return
	}

	s.logger.Info("Incident reported", "user_id", id.UserID, "incident_id", incident.ID, "type", incident.Type)
	httpx.WriteCreated(w)
}

// List returns the caller's incident reports, newest first.
func (s *IncidentService) List(w http.ResponseWriter, r *http.Request) {
	id, err := requireIdentity(r)
	if err != nil {
		fail(w, r, s.logger, err)
		return
	}

	incidents, err := s.store.ListIncidentsByUser(r.Context(), id.UserID)
	if err != nil {
		fail(w, r, s.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, incidents)
}
