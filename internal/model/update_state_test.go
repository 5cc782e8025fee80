package model

import "testing"

func TestUpdatePhase_IsBusy(t *testing.T) {
	tests := []struct {
		phase    UpdatePhase
		expected bool
	}{
		{UpdatePhaseIdle, false},
		{UpdatePhaseChecking, true},
		{UpdatePhaseAvailable, false},
		{UpdatePhaseDownloading, true},
		{UpdatePhaseDownloaded, false},
		{UpdatePhaseError, false},
	}

	for _, test := range tests {
		result := test.phase.IsBusy()
		if result != test.expected {
			t.Errorf("UpdatePhase(%s).IsBusy() = %v, expected %v", test.phase, result, test.expected)
		}
	}
}

func TestUpdatePhase_IsTerminal(t *testing.T) {
	tests := []struct {
		phase    UpdatePhase
		expected bool
	}{
		{UpdatePhaseIdle, false},
		{UpdatePhaseChecking, false},
		{UpdatePhaseAvailable, false},
		{UpdatePhaseDownloading, false},
		{UpdatePhaseDownloaded, true},
		{UpdatePhaseError, true},
	}

	for _, test := range tests {
		result := test.phase.IsTerminal()
		if result != test.expected {
			t.Errorf("UpdatePhase(%s).IsTerminal() = %v, expected %v", test.phase, result, test.expected)
		}
	}
}

func TestUpdateState_RetryPhase(t *testing.T) {
	tests := []struct {
		state    UpdateState
		expected UpdatePhase
	}{
		{IdleState(), UpdatePhaseIdle},
		{UpdateState{Phase: UpdatePhaseAvailable, Version: "1.2.0"}, UpdatePhaseIdle},
		{UpdateState{Phase: UpdatePhaseError, FailedOp: UpdateOpCheck}, UpdatePhaseChecking},
		{UpdateState{Phase: UpdatePhaseError, FailedOp: UpdateOpApply}, UpdatePhaseDownloading},
		{UpdateState{Phase: UpdatePhaseError}, UpdatePhaseChecking},
	}

	for _, test := range tests {
		result := test.state.RetryPhase()
		if result != test.expected {
			t.Errorf("RetryPhase() for %+v = %s, expected %s", test.state, result, test.expected)
		}
	}
}

func TestUpdatePhase_String(t *testing.T) {
	if UpdatePhaseDownloading.String() != "Downloading" {
		t.Errorf("UpdatePhase.String() = %s, expected Downloading", UpdatePhaseDownloading.String())
	}
}
