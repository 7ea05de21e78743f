package models

import (
	"encoding/json"
	"time"
)

// MeterReading is a customer-submitted meter value.
type MeterReading struct {
	ID          string    `json:"id"`
	UserID      string    `json:"-"`
	Reading     float64   `json:"reading"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// MarshalJSON writes SubmittedAt in TimestampLayout.
func (m MeterReading) MarshalJSON() ([]byte, error) {
	type plain MeterReading
	return json.Marshal(struct {
		plain
		SubmittedAt string `json:"submittedAt"`
	}{plain(m), FormatTimestamp(m.SubmittedAt)})
}
