package models

// ProcessStage is the pipeline position of a hiring process. The set is
// ordered for presentation but transitions are free-form: any stage may move
// to any other stage except itself.
type ProcessStage string

const (
	StagePool             ProcessStage = "pool"
	StageInitialInterview ProcessStage = "initial_interview"
	StageSubmitted        ProcessStage = "submitted"
	StageInterview        ProcessStage = "interview"
	StagePositive         ProcessStage = "positive"
	StageNegative         ProcessStage = "negative"
	StageOnHold           ProcessStage = "on_hold"
)

func (s ProcessStage) IsValid() bool {
	switch s {
	case StagePool, StageInitialInterview, StageSubmitted, StageInterview,
		StagePositive, StageNegative, StageOnHold:
		return true
	}
	return false
}

// IsClosing reports whether entering this stage closes the process.
func (s ProcessStage) IsClosing() bool {
	return s == StagePositive || s == StageNegative
}
