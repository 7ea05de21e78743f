// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/utilityportal/internal/models"
)

var (
	// ErrNotFound is returned when a lookup matches no record.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned by CreateUser when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserStore is the credential store.
type UserStore interface {
	// CreateUser persists a new user. ID and CreatedAt are populated by the store
	// when empty. Returns ErrDuplicateEmail if the email is taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail returns ErrNotFound if no user has this exact email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID returns ErrNotFound if no user has this id.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// BillStore reads and imports bills.
type BillStore interface {
	CreateBill(ctx context.Context, bill *models.Bill) error

	// ListBillsByUser returns the user's bills, latest due date first.
	ListBillsByUser(ctx context.Context, userID string) ([]*models.Bill, error)
}

// MeterReadingStore records customer meter readings.
type MeterReadingStore interface {
	CreateMeterReading(ctx context.Context, reading *models.MeterReading) error

	// ListMeterReadingsByUser returns the user's readings, newest first.
	ListMeterReadingsByUser(ctx context.Context, userID string) ([]*models.MeterReading, error)
}

// IncidentStore records customer incident reports.
type IncidentStore interface {
	CreateIncident(ctx context.Context, incident *models.Incident) error

	// ListIncidentsByUser returns the user's reports, newest first.
	ListIncidentsByUser(ctx context.Context, userID string) ([]*models.Incident, error)
}

// Store defines every storage operation the portal needs.
// This abstraction allows swapping storage backends (SQLite, in-memory)
// without changing the service layer.
type Store interface {
	UserStore
	BillStore
	MeterReadingStore
	IncidentStore

	// Close releases any resources held by the store.
	Close() error
}
