package player

import (
	"errors"
	"sync"
	"time"
)

// ErrMockClosed is returned by Mock commands after Close.
var ErrMockClosed = errors.New("mock handle closed")

const mockEventBuffer = 64

// Mock is a test double for Handle.
type Mock struct {
	mu          sync.Mutex
	loadCalls   []string
	playCalls   int
	pauseCalls  int
	seekCalls   []time.Duration
	volumeCalls []int
	current     time.Duration
	duration    time.Duration
	readErr     error
	cmdErr      error
	closed      bool
	events      chan Event
}

// NewMock creates a new mock handle for testing.
func NewMock() *Mock {
	return &Mock{events: make(chan Event, mockEventBuffer)}
}

func (m *Mock) command(record func()) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrMockClosed
	}
	record()
	return m.cmdErr
}

func (m *Mock) Load(id string) error {
	return m.command(func() { m.loadCalls = append(m.loadCalls, id) })
}

func (m *Mock) Play() error {
	return m.command(func() { m.playCalls++ })
}

func (m *Mock) Pause() error {
	return m.command(func() { m.pauseCalls++ })
}

func (m *Mock) SeekTo(pos time.Duration) error {
	return m.command(func() { m.seekCalls = append(m.seekCalls, pos) })
}

func (m *Mock) SetVolume(percent int) error {
	return m.command(func() { m.volumeCalls = append(m.volumeCalls, percent) })
}

func (m *Mock) CurrentTime() (time.Duration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current, m.readErr
}

func (m *Mock) Duration() (time.Duration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duration, m.readErr
}

func (m *Mock) Events() <-chan Event { return m.events }

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) EmitReady() { m.events <- Event{Kind: EventReady} }

func (m *Mock) EmitState(s PlayState) { m.events <- Event{Kind: EventStateChange, State: s} }

func (m *Mock) EmitError(c ErrorCode) { m.events <- Event{Kind: EventError, Code: c} }

func (m *Mock) SetTimes(current, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current, m.duration = current, duration
}

func (m *Mock) SetReadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readErr = err
}

func (m *Mock) SetCommandError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cmdErr = err
}

func (m *Mock) LoadCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.loadCalls...)
}

func (m *Mock) PlayCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playCalls
}

func (m *Mock) PauseCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pauseCalls
}

func (m *Mock) SeekCalls() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.seekCalls...)
}

func (m *Mock) VolumeCalls() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int(nil), m.volumeCalls...)
}

func (m *Mock) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// MockAPI is a test double for API that hands out a single Mock.
type MockAPI struct {
	mu        sync.Mutex
	available bool
	handle    *Mock
	newErr    error
	opts      []Options
	checks    int
}

// NewMockAPI returns an unavailable API that will hand out h.
func NewMockAPI(h *Mock) *MockAPI {
	return &MockAPI{handle: h}
}

func (a *MockAPI) Available() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.checks++
	return a.available
}

func (a *MockAPI) NewHandle(opts Options) (Handle, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.opts = append(a.opts, opts)
	if a.newErr != nil {
		return nil, a.newErr
	}
	return a.handle, nil
}

// Test helpers

func (a *MockAPI) SetAvailable(v bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.available = v
}

func (a *MockAPI) SetNewHandleError(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.newErr = err
}

// NewHandleCalls returns the options of every NewHandle call.
func (a *MockAPI) NewHandleCalls() []Options {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]Options(nil), a.opts...)
}

// AvailabilityChecks returns how many times Available was called.
func (a *MockAPI) AvailabilityChecks() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.checks
}

// Verify mocks implement the interfaces at compile time.
var (
	_ Handle = (*Mock)(nil)
	_ API    = (*MockAPI)(nil)
)
