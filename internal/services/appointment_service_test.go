package services

import (
	"context"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/dto"
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appointmentRequest(start, end string) dto.CreateAppointmentRequest {
	return dto.CreateAppointmentRequest{
		UserID:        models.DemoUserAlias,
		Dermatologist: "Dr. Rivera",
		Location:      "Downtown Clinic",
		StartTime:     start,
		EndTime:       end,
	}
}

func TestCreateAppointment(t *testing.T) {
	st := setupSeededStore(t)
	svc := NewAppointmentService(st)

	appt, err := svc.Create(context.Background(), appointmentRequest("2026-05-01T09:00:00Z", "2026-05-01T09:30:00.000Z"))
	require.NoError(t, err)

	demo, err := st.FindUserByEmail(context.Background(), models.DemoUserEmail)
	require.NoError(t, err)
	assert.Equal(t, demo.ID, appt.UserID)
	assert.Equal(t, "2026-05-01T09:00:00Z", appt.StartTime.Format(time.RFC3339Nano))
	assert.Equal(t, "2026-05-01T09:30:00Z", appt.EndTime.Format(time.RFC3339Nano))
}

func TestCreateAppointmentNormalizesOffsetToUTC(t *testing.T) {
	svc := NewAppointmentService(setupSeededStore(t))

	appt, err := svc.Create(context.Background(), appointmentRequest("2026-05-01T11:00:00+02:00", "2026-05-01T11:30:00+02:00"))
	require.NoError(t, err)
	assert.True(t, appt.StartTime.Equal(time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)))
	assert.Equal(t, time.UTC, appt.StartTime.Location())
}

func TestCreateAppointmentAcceptsEndBeforeStart(t *testing.T) {
	svc := NewAppointmentService(setupSeededStore(t))

	_, err := svc.Create(context.Background(), appointmentRequest("2026-05-01T10:00:00Z", "2026-05-01T09:00:00Z"))
	assert.NoError(t, err)
}

func TestCreateAppointmentValidation(t *testing.T) {
	svc := NewAppointmentService(setupSeededStore(t))

	req := appointmentRequest("tomorrow", "2026-05-01T09:00:00Z")
	req.Dermatologist = ""
	_, err := svc.Create(context.Background(), req)

	var verrs *dto.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, []string{"Required"}, verrs.Fields["dermatologist"])
	assert.Equal(t, []string{"Invalid datetime"}, verrs.Fields["startTime"])
	assert.NotContains(t, verrs.Fields, "endTime")
}

func TestCreateAppointmentUnknownUser(t *testing.T) {
	svc := NewAppointmentService(setupTestStore(t))

	_, err := svc.Create(context.Background(), appointmentRequest("2026-05-01T09:00:00Z", "2026-05-01T10:00:00Z"))
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListAppointments(t *testing.T) {
	st := setupSeededStore(t)
	svc := NewAppointmentService(st)
	ctx := context.Background()

	_, err := svc.Create(ctx, appointmentRequest("2026-06-02T09:00:00Z", "2026-06-02T10:00:00Z"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, appointmentRequest("2026-06-01T09:00:00Z", "2026-06-01T10:00:00Z"))
	require.NoError(t, err)

	mine, err := svc.List(ctx, models.DemoUserAlias)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.True(t, mine[0].StartTime.Before(mine[1].StartTime))

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	none, err := svc.List(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, none)

	garbage, err := svc.List(ctx, "not-an-id")
	require.NoError(t, err)
	assert.Empty(t, garbage)
}

func TestListAppointmentsAliasBeforeSeeding(t *testing.T) {
	svc := NewAppointmentService(setupTestStore(t))

	got, err := svc.List(context.Background(), models.DemoUserAlias)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
