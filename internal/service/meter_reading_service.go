package service

import (
	"log/slog"
	"math"
	"net/http"

	"github.com/mmynk/utilityportal/internal/apperr"
	"github.com/mmynk/utilityportal/internal/httpx"
	"github.com/mmynk/utilityportal/internal/models"
	"github.com/mmynk/utilityportal/internal/storage"
)

const msgInvalidReading = "Reading must be a positive number"

// MeterReadingService records and lists the caller's meter readings.
type MeterReadingService struct {
	store  storage.MeterReadingStore
	logger *slog.Logger
}

// NewMeterReadingService creates a new MeterReadingService with the given storage backend.
func NewMeterReadingService(store storage.MeterReadingStore, logger *slog.Logger) *MeterReadingService {
	return &MeterReadingService{store: store, logger: logger}
}

type meterReadingRequest struct {
	// Reading is a pointer so that an absent field is told apart from zero.
	Reading *float64 `json:"reading"`
}

func (req meterReadingRequest) Validate() error {
	if req.Reading == nil {
		return apperr.InvalidInput(msgInvalidReading)
	}
	v := *req.Reading
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return apperr.InvalidInput(msgInvalidReading)
	}
	return nil
}

// List returns the caller's readings, newest first.
func (s *MeterReadingService) List(w http.ResponseWriter, r *http.Request) {
	id, err := requireIdentity(r)
	if err != nil {
		fail(w, r, s.logger, err)
		return
	}

	readings, err := s.store.ListMeterReadingsByUser(r.Context(), id.UserID)
	if err != nil {
		fail(w, r, s.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, readings)
}

// Submit records a new reading for the caller.
func (s *MeterReadingService) Submit(w http.ResponseWriter, r *http.Request) {
	id, err := requireIdentity(r)
	if err != nil {
		fail(w, r, s.logger, err)
		return
	}

	var req meterReadingRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		// Strings, booleans and other non-numbers fail to decode into *float64.
		fail(w, r, s.logger, apperr.InvalidInput(msgInvalidReading))
		return
	}
	if err := req.Validate(); err != nil {
		fail(w, r, s.logger, err)
		return
	}

	reading := &models.MeterReading{UserID: id.UserID, Reading: *req.Reading}
	if err := s.store.CreateMeterReading(r.Context(), reading); err != nil {
		fail(w, r, s.logger, err)
		return
	}

	s.logger.Info("Meter reading submitted", "user_id", id.UserID, "reading_id", reading.ID)
	httpx.WriteCreated(w)
}
