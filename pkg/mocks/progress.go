package mocks

import (
	"sync"

	"github.com/user/framereel/pkg/ports"
)

// ProgressReporter is a mock implementation of ports.ProgressReporter.
type ProgressReporter struct {
	mu sync.Mutex

	// Recorded calls for verification
	BeginCalled bool
	BeginTotal  int
	Steps       []int
	DoneCalled  bool
	DoneEncoded int
	DoneSkipped int
}

func (m *ProgressReporter) Begin(total int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BeginCalled = true
	m.BeginTotal = total
}

func (m *ProgressReporter) Step(position int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Steps = append(m.Steps, position)
}

func (m *ProgressReporter) Done(encoded, skipped int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DoneCalled = true
	m.DoneEncoded = encoded
	m.DoneSkipped = skipped
}

// StepPositions returns a copy of the recorded step positions.
func (m *ProgressReporter) StepPositions() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]int, len(m.Steps))
	copy(out, m.Steps)
	return out
}

var _ ports.ProgressReporter = (*ProgressReporter)(nil)
