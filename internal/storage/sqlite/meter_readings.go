package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/utilityportal/internal/models"
)

// CreateMeterReading persists a new reading.
func (s *SQLiteStore) CreateMeterReading(ctx context.Context, reading *models.MeterReading) error {
	if reading.ID == "" {
		reading.ID = uuid.New().String()
	}
	if reading.SubmittedAt.IsZero() {
		reading.SubmittedAt = time.Now().UTC().Truncate(time.Millisecond)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO meter_readings (id, user_id, reading, submitted_at) VALUES (?, ?, ?, ?)`,
		reading.ID, reading.UserID, reading.Reading, formatTime(reading.SubmittedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert meter reading: %w", err)
	}

	return nil
}

// ListMeterReadingsByUser retrieves all readings owned by userID, newest first.
func (s *SQLiteStore) ListMeterReadingsByUser(ctx context.Context, userID string) ([]*models.MeterReading, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, reading, submitted_at
		 FROM meter_readings WHERE user_id = ? ORDER BY submitted_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list meter readings: %w", err)
	}
	defer rows.Close()

	readings := []*models.MeterReading{}
	for rows.Next() {
		reading := &models.MeterReading{}
		var submittedAt string
		if err := rows.Scan(&reading.ID, &reading.UserID, &reading.Reading, &submittedAt); err != nil {
			return nil, fmt.Errorf("failed to scan meter reading: %w", err)
		}
		if reading.SubmittedAt, err = parseTime(submittedAt); err != nil {
			return nil, err
		}
		readings = append(readings, reading)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate meter readings: %w", err)
	}

	return readings, nil
}
