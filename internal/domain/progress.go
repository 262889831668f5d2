package domain

// Progress step bounds
const (
	MinProgressStep = 0
	MaxProgressStep = 7
)

// Выделенные шаги трекера, на которые ссылаются переходы статусов
const (
	StepWorkCompleted   = 6
	StepVehiclePickedUp = 7
)

// stageLabels подписи этапов обслуживания для шагов 0..7
// Должны совпадать с подписями в панели администратора
var stageLabels = map[int]string{
	0: "Queued / Scheduled",
	1: "Received (Checked In)",
	2: "Inspection (Diagnosing)",
	3: "Feedback (Approving)",
	4: "Servicing (In Progress)",
	5: "Testing (QC Checks)",
	6: "Completed (Ready)",
	7: "Vehicle Picked Up (Archive)",
}

// ValidProgressStep returns true if step is within 0..7
func ValidProgressStep(step int) bool {
	return step >= MinProgressStep && step <= MaxProgressStep
}

// StageLabel returns the human-readable workshop stage for a step
func StageLabel(step int) string {
	if label, ok := stageLabels[step]; ok {
		return label
	}
	return ""
}

// StatusForStep derives the appointment status implied by a progress step.
// Шаг и статус всегда должны записываться вместе, чтобы сохранять их
// соответствие (lockstep invariant):
//
//	0    -> Scheduled
//	1..5 -> In Progress
//	6    -> Completed
//	7    -> Picked Up
func StatusForStep(step int) AppointmentStatus {
	switch {
	case step == 0:
		return StatusScheduled
	case step == 6:
		return StatusCompleted
	case step == 7:
		return StatusPickedUp
	default:
		return StatusInProgress
	}
}
