package workflow

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_Transitions(t *testing.T) {
	s := NewState()
	assert.Equal(t, PhaseIdle, s.Phase())

	assert.NoError(t, s.Begin())
	assert.Equal(t, PhaseLoading, s.Phase())

	s.Finish()
	assert.Equal(t, PhaseIdle, s.Phase())

	assert.NoError(t, s.Begin())
	s.Fail()
	assert.Equal(t, PhaseError, s.Phase())

	// Starting a new workflow clears a previous error.
	assert.NoError(t, s.Begin())
	assert.Equal(t, PhaseLoading, s.Phase())
	s.Finish()
}

func TestState_RejectsOverlappingWorkflows(t *testing.T) {
	s := NewState()

	assert.NoError(t, s.Begin())
	err := s.Begin()
	assert.ErrorIs(t, err, ErrInProgress)

	s.Finish()
	assert.NoError(t, s.Begin())
}

func TestState_ConcurrentBegin(t *testing.T) {
	s := NewState()

	const n = 32
	var wg sync.WaitGroup
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.Begin()
		}()
	}
	wg.Wait()
	close(errs)

	var ok, busy int
	for err := range errs {
		if err == nil {
			ok++
		} else {
			busy++
		}
	}
	assert.Equal(t, 1, ok, "exactly one concurrent submission may win")
	assert.Equal(t, n-1, busy)
}
