package workflow

import (
	"errors"
	"sync"
)

// ErrInProgress is returned when a workflow is started while another one is
// still loading.
var ErrInProgress = errors.New("another operation is already in progress")

// Phase is the current phase of the shared workflow state.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseError   Phase = "error"
)

// State is the shared loading/feedback state used by all workflows.
// It is the single point of mutation for the idle -> loading -> idle|error
// transitions and doubles as the double-submission guard: only one workflow
// may be loading at a time.
type State struct {
	mu    sync.Mutex
	phase Phase
}

// NewState returns a State in the idle phase.
func NewState() *State {
	return &State{phase: PhaseIdle}
}

// Begin transitions to loading. Starting from loading fails with
// ErrInProgress; starting from error clears the previous error.
func (s *State) Begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseLoading {
		return ErrInProgress
	}
	s.phase = PhaseLoading
	return nil
}

// Finish transitions back to idle after a successful workflow.
func (s *State) Finish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseIdle
}

// Fail transitions to error after a failed workflow. The next Begin clears it.
func (s *State) Fail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseError
}

// Phase returns the current phase.
func (s *State) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}
