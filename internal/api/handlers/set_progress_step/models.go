package set_progress_step

// SetProgressStepRequest HTTP request model
type SetProgressStepRequest struct {
	Step int `json:"step"`
}
