// Package memory provides an in-memory storage.Store for tests and local runs.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/utilityportal/internal/models"
	"github.com/mmynk/utilityportal/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store keeps all records in maps guarded by a single mutex.
// Returned records are copies; callers cannot mutate stored state.
type Store struct {
	mu        sync.RWMutex
	users     map[string]models.User
	emails    map[string]string // email -> user id
	bills     []models.Bill
	readings  []models.MeterReading
	incidents []models.Incident

	// failWith, when set, is returned by every operation.
	failWith error
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		users:  make(map[string]models.User),
		emails: make(map[string]string),
	}
}

// SetFailure makes every subsequent operation return err. Pass nil to recover.
func (s *Store) SetFailure(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = err
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failWith != nil {
		return s.failWith
	}
	if _, ok := s.emails[user.Email]; ok {
		return storage.ErrDuplicateEmail
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now()
	}

	s.users[user.ID] = *user
	s.emails[user.Email] = user.ID
	return nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failWith != nil {
		return nil, s.failWith
	}
	id, ok := s.emails[email]
	if !ok {
		return nil, storage.ErrNotFound
	}
	user := s.users[id]
	return &user, nil
}

func (s *Store) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failWith != nil {
		return nil, s.failWith
	}
	user, ok := s.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &user, nil
}

func (s *Store) CreateBill(ctx context.Context, bill *models.Bill) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failWith != nil {
		return s.failWith
	}
	if bill.ID == "" {
		bill.ID = uuid.New().String()
	}
	s.bills = append(s.bills, *bill)
	return nil
}

func (s *Store) ListBillsByUser(ctx context.Context, userID string) ([]*models.Bill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failWith != nil {
		return nil, s.failWith
	}
	bills := []*models.Bill{}
	for _, b := range s.bills {
		if b.UserID == userID {
			bills = append(bills, &b)
		}
	}
	slices.SortStableFunc(bills, func(a, b *models.Bill) int {
		return cmp.Compare(b.DueDate, a.DueDate)
	})
	return bills, nil
}

func (s *Store) CreateMeterReading(ctx context.Context, reading *models.MeterReading) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failWith != nil {
		return s.failWith
	}
	if reading.ID == "" {
		reading.ID = uuid.New().String()
	}
	if reading.SubmittedAt.IsZero() {
		reading.SubmittedAt = now()
	}
	s.readings = append(s.readings, *reading)
	return nil
}

func (s *Store) ListMeterReadingsByUser(ctx context.Context, userID string) ([]*models.MeterReading, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failWith != nil {
		return nil, s.failWith
	}
	readings := []*models.MeterReading{}
	for _, r := range s.readings {
		if r.UserID == userID {
			readings = append(readings, &r)
		}
	}
	slices.SortStableFunc(readings, func(a, b *models.MeterReading) int {
		return b.SubmittedAt.Compare(a.SubmittedAt)
	})
	return readings, nil
}

func (s *Store) CreateIncident(ctx context.Context, incident *models.Incident) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failWith != nil {
		return s.failWith
	}
	if incident.ID == "" {
		incident.ID = uuid.New().String()
	}
	if incident.CreatedAt.IsZero() {
		incident.CreatedAt = now()
	}
	s.incidents = append(s.incidents, *incident)
	return nil
}

func (s *Store) ListIncidentsByUser(ctx context.Context, userID string) ([]*models.Incident, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failWith != nil {
		return nil, s.failWith
	}
	incidents := []*models.Incident{}
	for _, inc := range s.incidents {
		if inc.UserID == userID {
			incidents = append(incidents, &inc)
		}
	}
	slices.SortStableFunc(incidents, func(a, b *models.Incident) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return incidents, nil
}

func (s *Store) Close() error {
	return nil
}
