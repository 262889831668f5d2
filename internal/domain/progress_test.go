package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidProgressStep(t *testing.T) {
	for step := MinProgressStep; step <= MaxProgressStep; step++ {
		assert.True(t, ValidProgressStep(step), "step %d", step)
	}
	assert.False(t, ValidProgressStep(-1))
	assert.False(t, ValidProgressStep(8))
}

func TestStatusForStep(t *testing.T) {
	assert.Equal(t, StatusScheduled, StatusForStep(0))
	for step := 1; step <= 5; step++ {
		assert.Equal(t, StatusInProgress, StatusForStep(step), "step %d", step)
	}
	assert.Equal(t, StatusCompleted, StatusForStep(StepWorkCompleted))
	assert.Equal(t, StatusPickedUp, StatusForStep(StepVehiclePickedUp))
}

func TestStageLabel(t *testing.T) {
	assert.Equal(t, "Queued / Scheduled", StageLabel(0))
	assert.Equal(t, "Servicing (In Progress)", StageLabel(4))
	assert.Equal(t, "Vehicle Picked Up (Archive)", StageLabel(7))
	assert.Equal(t, "", StageLabel(8))
}
