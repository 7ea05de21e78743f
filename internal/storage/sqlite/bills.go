package sqlite

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/utilityportal/internal/models"
)

// CreateBill persists a new bill for bill.UserID.
func (s *SQLiteStore) CreateBill(ctx context.Context, bill *models.Bill) error {
	if bill.ID == "" {
		bill.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO bills (id, user_id, due_date, amount_pence, pdf_url, status)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		bill.ID, bill.UserID, bill.DueDate, bill.AmountPence, bill.PDFURL, bill.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to insert bill: %w", err)
	}

	return nil
}

// ListBillsByUser retrieves all bills owned by userID, latest due date first.
func (s *SQLiteStore) ListBillsByUser(ctx context.Context, userID string) ([]*models.Bill, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, due_date, amount_pence, pdf_url, status
		 FROM bills WHERE user_id = ? ORDER BY due_date DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	bills := []*models.Bill{}
	for rows.Next() {
		bill := &models.Bill{}
		if err := rows.Scan(&bill.ID, &bill.UserID, &bill.DueDate, &bill.AmountPence, &bill.PDFURL, &bill.Status); err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		bills = append(bills, bill)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bills: %w", err)
	}

	return bills, nil
}
