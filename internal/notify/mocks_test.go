package notify

import (
	"errors"
	"sync"
)

// LaunchCall records one Launcher invocation.
type LaunchCall struct {
	Name  string
	Args  []string
	Stdin []byte // nil for Start
}

// MockLauncher records every launch instead of running anything.
type MockLauncher struct {
	mu sync.Mutex

	StartError error
	FeedError  error

	Calls []LaunchCall
}

// NewMockLauncher creates a launcher that succeeds on every call
func NewMockLauncher() *MockLauncher {
	return &MockLauncher{}
}

func (m *MockLauncher) Start(name string, args ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, LaunchCall{Name: name, Args: args})
	return m.StartError
}

func (m *MockLauncher) Feed(stdin []byte, name string, args ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, LaunchCall{Name: name, Args: args, Stdin: stdin})
	return m.FeedError
}

// MockSender records notifications passed to Send.
type MockSender struct {
	mu sync.Mutex

	name      string
	available bool
	SendError error

	Sent []Notification
}

// NewMockSender creates a named mock sender that is available and succeeds
func NewMockSender(name string) *MockSender {
	return &MockSender{name: name, available: true}
}

// WithSendError configures the mock to fail every Send
func (m *MockSender) WithSendError(err error) *MockSender {
	m.SendError = err
	return m
}

func (m *MockSender) Name() string    { return m.name }
func (m *MockSender) Available() bool { return m.available }

func (m *MockSender) Send(n Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, n)
	return m.SendError
}

// errLaunch is a canned launch failure
var errLaunch = errors.New("exec: file not found")
