package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    AppointmentStatus
		wantErr bool
	}{
		{name: "exact literal", input: "Pending", want: StatusPending},
		{name: "two word literal", input: "In Progress", want: StatusInProgress},
		{name: "lowercase", input: "scheduled", want: StatusScheduled},
		{name: "upper with spaces", input: "  PICKED UP ", want: StatusPickedUp},
		{name: "empty defaults to pending", input: "", want: StatusPending},
		{name: "unknown rejected", input: "Parked", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAppointmentIsActive(t *testing.T) {
	active := []AppointmentStatus{StatusPending, StatusScheduled, StatusInProgress}
	for _, status := range active {
		assert.True(t, (&Appointment{Status: status}).IsActive(), "status %s", status)
	}

	inactive := []AppointmentStatus{StatusCompleted, StatusPickedUp, StatusCancelled, StatusArchived}
	for _, status := range inactive {
		assert.False(t, (&Appointment{Status: status}).IsActive(), "status %s", status)
	}
}

func TestAppointmentCancellationGuards(t *testing.T) {
	// Отменить и перенести нельзя только завершенную запись
	assert.False(t, (&Appointment{Status: StatusCompleted}).CanBeCancelled())
	assert.False(t, (&Appointment{Status: StatusCompleted}).CanBeRescheduled())

	for _, status := range []AppointmentStatus{StatusPending, StatusScheduled, StatusInProgress, StatusCancelled} {
		assert.True(t, (&Appointment{Status: status}).CanBeCancelled(), "status %s", status)
		assert.True(t, (&Appointment{Status: status}).CanBeRescheduled(), "status %s", status)
	}
}

func TestAppointmentAdminTransitions(t *testing.T) {
	// Approve: только из Pending
	assert.True(t, (&Appointment{Status: StatusPending}).CanBeApproved())
	assert.False(t, (&Appointment{Status: StatusScheduled}).CanBeApproved())
	assert.False(t, (&Appointment{Status: StatusCompleted}).CanBeApproved())

	// Reject: нельзя из завершенных и уже отмененных состояний
	assert.True(t, (&Appointment{Status: StatusPending}).CanBeRejected())
	assert.True(t, (&Appointment{Status: StatusInProgress}).CanBeRejected())
	assert.False(t, (&Appointment{Status: StatusCompleted}).CanBeRejected())
	assert.False(t, (&Appointment{Status: StatusCancelled}).CanBeRejected())
	assert.False(t, (&Appointment{Status: StatusPickedUp}).CanBeRejected())
	assert.False(t, (&Appointment{Status: StatusArchived}).CanBeRejected())

	// Complete: только из Scheduled или In Progress
	assert.True(t, (&Appointment{Status: StatusScheduled}).CanBeCompleted())
	assert.True(t, (&Appointment{Status: StatusInProgress}).CanBeCompleted())
	assert.False(t, (&Appointment{Status: StatusPending}).CanBeCompleted())
	assert.False(t, (&Appointment{Status: StatusCompleted}).CanBeCompleted())
}
