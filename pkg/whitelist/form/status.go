package form

// Phase is the lifecycle position of a submission.
type Phase int

const (
	// PhaseIdle means no submission has run since the last reset.
	PhaseIdle Phase = iota
	// PhaseChecking means a submission is waiting for the record store.
	PhaseChecking
	// PhaseSuccess means the last submission inserted an entry.
	PhaseSuccess
	// PhaseError means the last submission was rejected or failed.
	PhaseError
)

var phaseNames = map[Phase]string{
	PhaseIdle:     "idle",
	PhaseChecking: "checking",
	PhaseSuccess:  "success",
	PhaseError:    "error",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// Status is the single observable state of the form. Message is the
// user-facing text for PhaseSuccess and PhaseError and empty otherwise.
type Status struct {
	Phase   Phase
	Message string
}

// Loading reports whether a submission is in flight.
func (s Status) Loading() bool {
	return s.Phase == PhaseChecking
}

// Error returns the error message, if the last attempt failed.
func (s Status) Error() string {
	if s.Phase == PhaseError {
		return s.Message
	}
	return ""
}

// Success returns the success message, if the last attempt inserted an entry.
func (s Status) Success() string {
	if s.Phase == PhaseSuccess {
		return s.Message
	}
	return ""
}
