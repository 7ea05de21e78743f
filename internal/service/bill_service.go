package service

import (
	"log/slog"
	"net/http"

	"github.com/mmynk/utilityportal/internal/httpx"
	"github.com/mmynk/utilityportal/internal/storage"
)

// BillService lists the caller's bills.
type BillService struct {
	store  storage.BillStore
	logger *slog.Logger
}

// NewBillService creates a new BillService with the given storage backend.
func NewBillService(store storage.BillStore, logger *slog.Logger) *BillService {
	return &BillService{store: store, logger: logger}
}

// List returns the caller's bills, latest due date first.
func (s *BillService) List(w http.ResponseWriter, r *http.Request) {
	id, err := requireIdentity(r)
	if err != nil {
		fail(w, r, s.logger, err)
		return
	}

	bills, err := s.store.ListBillsByUser(r.Context(), id.UserID)
	if err != nil {
		fail(w, r, s.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, bills)
}
