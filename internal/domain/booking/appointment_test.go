package booking

import (
	"testing"
	"time"

	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAppointment(t *testing.T) *Appointment {
	t.Helper()
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	a, err := NewAppointment(start, start.Add(time.Hour), "Fitting with Mr. Kaya", nil, nil, "", "shop", TypeFitting)
	require.NoError(t, err)
	return a
}

func TestNewAppointmentValidation(t *testing.T) {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	_, err := NewAppointment(time.Time{}, start, "title", nil, nil, "", "", TypeFitting)
	requireCode(t, err, "INVALID_TIME")

	_, err = NewAppointment(start, start, "title", nil, nil, "", "", TypeFitting)
	requireCode(t, err, "INVALID_TIME_RANGE")

	_, err = NewAppointment(start, start.Add(time.Hour), "  ", nil, nil, "", "", TypeFitting)
	requireCode(t, err, "INVALID_TITLE")

	_, err = NewAppointment(start, start.Add(time.Hour), "title", nil, nil, "", "", AppointmentType("Lunch"))
	requireCode(t, err, "INVALID_APPOINTMENT_TYPE")
}

func TestAppointmentLinks(t *testing.T) {
	a := validAppointment(t)
	clientID := uuid.New()

	a.LinkClient(&clientID)
	require.NotNil(t, a.ClientID)
	assert.Equal(t, clientID, *a.ClientID)

	a.LinkClient(nil)
	assert.Nil(t, a.ClientID)
}

func TestAppointmentReschedule(t *testing.T) {
	a := validAppointment(t)
	newStart := a.StartTime.Add(24 * time.Hour)

	require.NoError(t, a.Reschedule(newStart, newStart.Add(30*time.Minute)))
	assert.Equal(t, newStart, a.StartTime)

	err := a.Reschedule(newStart, newStart)
	requireCode(t, err, "INVALID_TIME_RANGE")
}

func TestAppointmentOverlaps(t *testing.T) {
	a := validAppointment(t) // 10:00-11:00

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"contains", a.StartTime.Add(-time.Hour), a.EndTime.Add(time.Hour), true},
		{"contained", a.StartTime.Add(10 * time.Minute), a.StartTime.Add(20 * time.Minute), true},
		{"overlaps start", a.StartTime.Add(-time.Hour), a.StartTime.Add(time.Minute), true},
		{"overlaps end", a.EndTime.Add(-time.Minute), a.EndTime.Add(time.Hour), true},
		{"before", a.StartTime.Add(-2 * time.Hour), a.StartTime.Add(-time.Hour), false},
		{"after", a.EndTime.Add(time.Hour), a.EndTime.Add(2 * time.Hour), false},
		{"touching start is exclusive", a.StartTime.Add(-time.Hour), a.StartTime, false},
		{"touching end is exclusive", a.EndTime, a.EndTime.Add(time.Hour), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Overlaps(tt.start, tt.end))
		})
	}
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	domainErr, ok := err.(*shared.DomainError)
	require.True(t, ok, "expected *shared.DomainError, got %T", err)
	assert.Equal(t, code, domainErr.Code)
}
