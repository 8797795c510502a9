package mocks

import (
	"fmt"
	"strings"
	"sync"

	"github.com/user/framereel/pkg/ports"
)

// Logger is a mock implementation of ports.Logger. Formatted messages
// are recorded per level for verification.
type Logger struct {
	mu sync.Mutex

	DebugMessages []string
	InfoMessages  []string
	WarnMessages  []string
	ErrorMessages []string
	Components    []string
}

// NewLogger creates a new mock Logger.
func NewLogger() *Logger {
	return &Logger{}
}

func (m *Logger) Debug(msg string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DebugMessages = append(m.DebugMessages, fmt.Sprintf(msg, args...))
}

func (m *Logger) Info(msg string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InfoMessages = append(m.InfoMessages, fmt.Sprintf(msg, args...))
}

func (m *Logger) Warn(msg string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.WarnMessages = append(m.WarnMessages, fmt.Sprintf(msg, args...))
}

func (m *Logger) Error(msg string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ErrorMessages = append(m.ErrorMessages, fmt.Sprintf(msg, args...))
}

func (m *Logger) WithComponent(component string) ports.Logger {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Components = append(m.Components, component)
	return m
}

// HasWarn reports whether any warning containing the substring was logged.
func (m *Logger) HasWarn(substr string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, msg := range m.WarnMessages {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}

var _ ports.Logger = (*Logger)(nil)
