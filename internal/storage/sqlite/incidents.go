package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/utilityportal/internal/models"
)

// CreateIncident persists a new incident report.
func (s *SQLiteStore) CreateIncident(ctx context.Context, incident *models.Incident) error {
	if incident.ID == "" {
		incident.ID = uuid.New().String()
	}
	if incident.CreatedAt.IsZero() {
		incident.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO incidents (id, user_id, type, description, postcode, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		incident.ID, incident.UserID, incident.Type,
		nullString(incident.Description), nullString(incident.Postcode),
		formatTime(incident.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert incident: %w", err)
	}

	return nil
}

// ListIncidentsByUser retrieves all incidents reported by userID, newest first.
func (s *SQLiteStore) ListIncidentsByUser(ctx context.Context, userID string) ([]*models.Incident, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, type, description, postcode, created_at
		 FROM incidents WHERE user_id = ? ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := []*models.Incident{}
	for rows.Next() {
		incident := &models.Incident{}
		var description, postcode sql.NullString
		var createdAt string

		if err := rows.Scan(&incident.ID, &incident.UserID, &incident.Type, &description, &postcode, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan incident: %w", err)
		}

		incident.Description = stringPtr(description)
		incident.Postcode = stringPtr(postcode)
		if incident.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}

		incidents = append(incidents, incident)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate incidents: %w", err)
	}

	return incidents, nil
}
