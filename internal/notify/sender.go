package notify

import (
	"os"
	"os/exec"
)

// Sender delivers a notification through one notifier process
type Sender interface {
	// Name identifies the sender in logs and diagnostics
	Name() string

	// Send launches the notifier. It returns once the process is started
	// (or, for stdin-fed senders, once it has consumed its input).
	Send(n Notification) error

	// Available reports whether the notifier executable can be found
	Available() bool
}

// NewSenders returns the senders for the configured backend, in launch order.
func NewSenders(cfg Config, l Launcher) []Sender {
	switch cfg.Backend {
	case BackendRich:
		senders := []Sender{newTerminalNotifierSender(cfg.TerminalNotifierCmd, cfg.ActivateBundle, l)}
		if cfg.CompanionEnabled && cfg.CompanionCmd != "" {
			senders = append(senders, newCompanionSender(cfg.CompanionCmd, l))
		}
		return senders
	case BackendSystem:
		return []Sender{newSystemSender(l)}
	default:
		return []Sender{newNativeSender(cfg.NotifierPath, l)}
	}
}

// toolAvailable checks if a command-line tool is available in PATH.
// Names containing a path separator are looked up directly.
func toolAvailable(name string) bool {
	if name == "" {
		return false
	}
	_, err := exec.LookPath(name)
	return err == nil
}

// ResolveIcon returns path if it names an existing regular file, and ""
// otherwise.
func ResolveIcon(path string) string {
	if path == "" {
		return ""
	}
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return ""
	}
	return path
}

// noopSender is a sender that does nothing (for unsupported platforms)
type noopSender struct{}

func (s *noopSender) Name() string              { return "noop" }
func (s *noopSender) Send(_ Notification) error { return nil }
func (s *noopSender) Available() bool           { return false }
