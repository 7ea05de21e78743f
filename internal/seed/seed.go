// Package seed populates a store with the demo account used for local runs.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmynk/utilityportal/internal/auth"
	"github.com/mmynk/utilityportal/internal/models"
	"github.com/mmynk/utilityportal/internal/storage"
)

// Demo account credentials.
const (
	DemoEmail    = "demo@customer.test"
	DemoPassword = "Demo123!"
)

// Result reports what Run created.
type Result struct {
	UserID   string
	Created  bool
	Bills    int
	Readings int
}

// Run creates the demo user with sample bills and a first meter reading.
// It is idempotent: data the demo user already has is left untouched, and
// anything missing from an interrupted earlier run is filled in.
func Run(ctx context.Context, store storage.Store, authenticator auth.Authenticator, logger *slog.Logger) (Result, error) {
	first, last, address := "Demo", "Customer", "1 Reservoir Road, London SE1 7PB"

	created := true
	user, err := authenticator.Register(ctx, DemoEmail, DemoPassword, auth.Profile{
		FirstName: &first,
		LastName:  &last,
		Address:   &address,
	})
	if errors.Is(err, auth.ErrEmailExists) {
		created = false
		user, err = store.GetUserByEmail(ctx, DemoEmail)
		if err != nil {
			return Result{}, fmt.Errorf("failed to load existing demo user: %w", err)
		}
	} else if err != nil {
		return Result{}, fmt.Errorf("failed to create demo user: %w", err)
	}

	res := Result{UserID: user.ID, Created: created}

	existingBills, err := store.ListBillsByUser(ctx, user.ID)
	if err != nil {
		return Result{}, fmt.Errorf("failed to list demo bills: %w", err)
	}
	if len(existingBills) == 0 {
		bills := demoBills(user.ID)
		for _, b := range bills {
			if err := store.CreateBill(ctx, b); err != nil {
				return Result{}, fmt.Errorf("failed to create demo bill: %w", err)
			}
		}
		res.Bills = len(bills)
	}

	readings, err := store.ListMeterReadingsByUser(ctx, user.ID)
	if err != nil {
		return Result{}, fmt.Errorf("failed to list demo readings: %w", err)
	}
	if len(readings) == 0 {
		reading := &models.MeterReading{
			UserID:      user.ID,
			Reading:     1234.5,
			SubmittedAt: time.Date(2025, 9, 28, 8, 30, 0, 0, time.UTC),
		}
		if err := store.CreateMeterReading(ctx, reading); err != nil {
			return Result{}, fmt.Errorf("failed to create demo reading: %w", err)
		}
		res.Readings = 1
	}

	if !created && res.Bills == 0 && res.Readings == 0 {
		logger.Info("Demo user already seeded", "user_id", user.ID)
		return res, nil
	}
	logger.Info("Database seeded", "user_id", user.ID, "bills", res.Bills, "readings", res.Readings)
	return res, nil
}

func demoBills(userID string) []*models.Bill {
	return []*models.Bill{
		{UserID: userID, DueDate: "2025-08-15", AmountPence: 4218, PDFURL: "/mock/bill-2025-08.pdf", Status: models.BillStatusPaid},
		{UserID: userID, DueDate: "2025-09-15", AmountPence: 3990, PDFURL: "/mock/bill-2025-09.pdf", Status: models.BillStatusPaid},
		{UserID: userID, DueDate: "2025-10-15", AmountPence: 4475, PDFURL: "/mock/bill-2025-10.pdf", Status: models.BillStatusDue},
	}
}
