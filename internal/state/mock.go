package state

import (
	"context"
	"sync"
)

// Mock is an in-memory Interface for tests.
type Mock struct {
	mu     sync.Mutex
	prefs  *Preferences
	saves  []Preferences
	closed bool
}

// NewMock creates a mock with no saved preferences.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Preferences(context.Context) (Preferences, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.prefs == nil {
		return Preferences{}, false, nil
	}
	return *m.prefs, true, nil
}

func (m *Mock) SavePreferences(p Preferences) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs = &p
	m.saves = append(m.saves, p)
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Saves returns every value passed to SavePreferences.
func (m *Mock) Saves() []Preferences {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Preferences(nil), m.saves...)
}

func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

var _ Interface = (*Mock)(nil)
