package models

import "time"

// TimestampLayout is ISO-8601 in UTC with exactly three fractional digits.
// It is used both on the wire and in storage.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
