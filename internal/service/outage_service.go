package service

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/mmynk/utilityportal/internal/httpx"
	"github.com/mmynk/utilityportal/internal/models"
)

// defaultPostcode is used when the caller does not pass one.
const defaultPostcode = "SE1"

// OutageService serves a mocked outage feed until an incident-management
// integration exists.
type OutageService struct {
	logger *slog.Logger
}

// NewOutageService creates a new OutageService.
func NewOutageService(logger *slog.Logger) *OutageService {
	return &OutageService{logger: logger}
}

// List returns the two mock outages for the area of the postcode query parameter.
func (s *OutageService) List(w http.ResponseWriter, r *http.Request) {
	if _, err := requireIdentity(r); err != nil {
		fail(w, r, s.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, OutagesFor(r.URL.Query().Get("postcode")))
}

// OutagesFor builds the feed for a postcode. The area is the first two
// characters of the postcode, upper-cased.
func OutagesFor(postcode string) []models.Outage {
	area := postcodeArea(postcode)
	return []models.Outage{
		{
			ID:      1,
			Area:    area,
			Status:  "investigating",
			Message: "Low pressure reported in your area.",
		},
		{
			ID:      2,
			Area:    area,
			Status:  "planned",
			Message: "Planned maintenance on 2025-11-10 09:00–12:00.",
		},
	}
}

func postcodeArea(postcode string) string {
	postcode = strings.TrimSpace(postcode)
	if postcode == "" {
		postcode = defaultPostcode
	}
	runes := []rune(postcode)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}
