package models

import (
	"encoding/json"
	"time"
)

// Incident is a problem report (leak, low pressure, outage) filed by a customer.
type Incident struct {
	ID          string    `json:"id"`
	UserID      string    `json:"-"`
	Type        string    `json:"type"`
	Description *string   `json:"description"`
	Postcode    *string   `json:"postcode"`
	CreatedAt   time.Time `json:"createdAt"`
}

// MarshalJSON writes CreatedAt in TimestampLayout.
func (i Incident) MarshalJSON() ([]byte, error) {
	type plain Incident
	return json.Marshal(struct {
		plain
		CreatedAt string `json:"createdAt"`
	}{plain(i), FormatTimestamp(i.CreatedAt)})
}
