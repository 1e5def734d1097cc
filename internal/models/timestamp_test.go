package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatISO(t *testing.T) {
	plus2 := time.FixedZone("+02:00", 2*60*60)
	assert.Equal(t, "2026-05-01T09:00:00.000Z", FormatISO(time.Date(2026, 5, 1, 11, 0, 0, 0, plus2)))
	assert.Equal(t, "2026-05-01T09:00:00.123Z", FormatISO(time.Date(2026, 5, 1, 9, 0, 0, 123456789, time.UTC)))
}

func TestAppointmentJSONTimestamps(t *testing.T) {
	start, err := time.Parse(time.RFC3339Nano, "2026-05-01T11:00:00+02:00")
	require.NoError(t, err)
	appt := Appointment{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		Dermatologist: "Dr. Rivera",
		Location:      "Downtown Clinic",
		StartTime:     start,
		EndTime:       start.Add(30 * time.Minute),
		CreatedAt:     time.Date(2026, 4, 1, 8, 0, 0, 5e6, time.UTC),
		User:          &User{Email: "hidden@example.com"},
	}

	b, err := json.Marshal(&appt)
	require.NoError(t, err)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &got))

	assert.Equal(t, "2026-05-01T09:00:00.000Z", got["startTime"])
	assert.Equal(t, "2026-05-01T09:30:00.000Z", got["endTime"])
	assert.Equal(t, "2026-04-01T08:00:00.005Z", got["createdAt"])
	assert.Equal(t, "Dr. Rivera", got["dermatologist"])
	assert.Equal(t, appt.UserID.String(), got["userId"])
	assert.NotContains(t, got, "User")
	assert.Nil(t, got["notes"])
}

func TestSkinAnalysisJSONTimestamps(t *testing.T) {
	a := SkinAnalysis{ID: uuid.New(), ScoreHydration: 72, CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}

	b, err := json.Marshal(a)
	require.NoError(t, err)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &got))

	assert.Equal(t, "2026-01-02T03:04:05.000Z", got["createdAt"])
	assert.EqualValues(t, 72, got["scoreHydration"])
	assert.NotContains(t, got, "imageKey")
}
