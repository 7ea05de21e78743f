package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/utilityportal/internal/models"
	"github.com/mmynk/utilityportal/internal/storage"
)

func TestStore_Users(t *testing.T) {
	s := New()
	ctx := context.Background()

	user := &models.User{Email: "alice@example.test", PasswordHash: "h"}
	require.NoError(t, s.CreateUser(ctx, user))
	assert.NotEmpty(t, user.ID)

	err := s.CreateUser(ctx, &models.User{Email: "alice@example.test", PasswordHash: "x"})
	assert.ErrorIs(t, err, storage.ErrDuplicateEmail)

	got, err := s.GetUserByEmail(ctx, "alice@example.test")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	// Mutating the returned copy must not leak into the store.
	got.Email = "mallory@example.test"
	again, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.test", again.Email)

	_, err = s.GetUserByID(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStore_OwnedRecords(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.CreateBill(ctx, &models.Bill{UserID: "a", DueDate: "2025-01-01"}))
	require.NoError(t, s.CreateBill(ctx, &models.Bill{UserID: "a", DueDate: "2025-03-01"}))
	require.NoError(t, s.CreateBill(ctx, &models.Bill{UserID: "b", DueDate: "2025-02-01"}))

	bills, err := s.ListBillsByUser(ctx, "a")
	require.NoError(t, err)
	require.Len(t, bills, 2)
	assert.Equal(t, "2025-03-01", bills[0].DueDate)

	t0 := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.CreateMeterReading(ctx, &models.MeterReading{UserID: "a", Reading: 1, SubmittedAt: t0}))
	require.NoError(t, s.CreateMeterReading(ctx, &models.MeterReading{UserID: "a", Reading: 2, SubmittedAt: t0.Add(time.Hour)}))

	readings, err := s.ListMeterReadingsByUser(ctx, "a")
	require.NoError(t, err)
	require.Len(t, readings, 2)
	assert.Equal(t, 2.0, readings[0].Reading)

	empty, err := s.ListIncidentsByUser(ctx, "a")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestStore_SetFailure(t *testing.T) {
	s := New()
	offline := errors.New("store offline")
	s.SetFailure(offline)

	_, err := s.ListBillsByUser(context.Background(), "a")
	assert.ErrorIs(t, err, offline)
	assert.ErrorIs(t, s.CreateIncident(context.Background(), &models.Incident{}), offline)

	s.SetFailure(nil)
	_, err = s.ListBillsByUser(context.Background(), "a")
	assert.NoError(t, err)
}
