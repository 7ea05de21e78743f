package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampsKeepMilliseconds(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"whole second", time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC), "2025-10-01T09:00:00.000Z"},
		{"trailing zero", time.Date(2025, 10, 1, 9, 0, 0, 120_000_000, time.UTC), "2025-10-01T09:00:00.120Z"},
		{"sub-millisecond", time.Date(2025, 10, 1, 9, 0, 0, 123_456_789, time.UTC), "2025-10-01T09:00:00.123Z"},
		{"non-UTC zone", time.Date(2025, 10, 1, 10, 0, 0, 0, time.FixedZone("BST", 3600)), "2025-10-01T09:00:00.000Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(MeterReading{ID: "r1", UserID: "u1", Reading: 12.5, SubmittedAt: tt.at})
			require.NoError(t, err)
			assert.JSONEq(t, `{"id": "r1", "reading": 12.5, "submittedAt": "`+tt.want+`"}`, string(data))

			data, err = json.Marshal(&Incident{ID: "i1", UserID: "u1", Type: "leak", CreatedAt: tt.at})
			require.NoError(t, err)
			assert.JSONEq(t, `{"id": "i1", "type": "leak", "description": null, "postcode": null, "createdAt": "`+tt.want+`"}`, string(data))
		})
	}
}

func TestTimestampsRoundTrip(t *testing.T) {
	at := time.Date(2025, 10, 1, 9, 0, 0, 120_000_000, time.UTC)
	data, err := json.Marshal(MeterReading{ID: "r1", Reading: 1, SubmittedAt: at})
	require.NoError(t, err)

	var got MeterReading
	require.NoError(t, json.Unmarshal(data, &got))
	assert.True(t, at.Equal(got.SubmittedAt))
}
