package model

// UpdatePhase represents the phase of the update check/apply cycle
type UpdatePhase string

const (
	// UpdatePhaseIdle means no update operation is running or pending
	UpdatePhaseIdle UpdatePhase = "Idle"

	// UpdatePhaseChecking means release metadata is being fetched
	UpdatePhaseChecking UpdatePhase = "Checking"

	// UpdatePhaseAvailable means a different release was found
	UpdatePhaseAvailable UpdatePhase = "Available"

	// UpdatePhaseDownloading means the new binary is being downloaded and applied
	UpdatePhaseDownloading UpdatePhase = "Downloading"

	// UpdatePhaseDownloaded means the running binary was replaced
	UpdatePhaseDownloaded UpdatePhase = "Downloaded"

	// UpdatePhaseError means the last check or apply failed
	UpdatePhaseError UpdatePhase = "Error"
)

// String returns the string representation of UpdatePhase
func (p UpdatePhase) String() string {
	return string(p)
}

// IsBusy returns true while a background worker owns the phase
func (p UpdatePhase) IsBusy() bool {
	return p == UpdatePhaseChecking || p == UpdatePhaseDownloading
}

// IsTerminal returns true for phases that need explicit dismissal
func (p UpdatePhase) IsTerminal() bool {
	return p == UpdatePhaseDownloaded || p == UpdatePhaseError
}

// UpdateOp identifies which update operation a worker ran
type UpdateOp string

const (
	UpdateOpCheck UpdateOp = "check"
	UpdateOpApply UpdateOp = "apply"
)

// UpdateState is the update dialog state owned by the UI goroutine
type UpdateState struct {
	Phase    UpdatePhase
	Version  string   // set for Available and Downloaded
	Message  string   // set for Error
	FailedOp UpdateOp // operation to re-run on retry, set for Error
}

// IdleState returns the initial state
func IdleState() UpdateState {
	return UpdateState{Phase: UpdatePhaseIdle}
}

// RetryPhase returns the phase a retry re-enters, or Idle when nothing failed
func (s UpdateState) RetryPhase() UpdatePhase {
	if s.Phase != UpdatePhaseError {
		return UpdatePhaseIdle
	}
	if s.FailedOp == UpdateOpApply {
		return UpdatePhaseDownloading
	}
	return UpdatePhaseChecking
}
