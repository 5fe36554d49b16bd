package notify

import (
	"io"
	"log/slog"
)

// Dispatcher fans a notification out to the configured senders.
// Dispatch never fails: sender errors are logged and dropped so that a
// broken notifier cannot affect the hook run.
type Dispatcher struct {
	config  Config
	senders []Sender
	logger  *slog.Logger
}

// NewDispatcher creates a dispatcher that launches real notifier processes.
func NewDispatcher(cfg Config, logger *slog.Logger) *Dispatcher {
	return NewDispatcherWithSenders(cfg, NewSenders(cfg, ExecLauncher{}), logger)
}

// NewDispatcherWithSenders creates a dispatcher with custom senders (for testing).
func NewDispatcherWithSenders(cfg Config, senders []Sender, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Dispatcher{config: cfg, senders: senders, logger: logger}
}

// Config returns the dispatcher's backend configuration
func (d *Dispatcher) Config() Config {
	return d.config
}

// Senders returns the senders in launch order
func (d *Dispatcher) Senders() []Sender {
	return d.senders
}

// Dispatch attaches the configured icon when it exists on disk and hands the
// notification to every sender in order.
func (d *Dispatcher) Dispatch(n Notification) {
	if n.IconPath == "" {
		n.IconPath = ResolveIcon(d.config.IconPath)
	} else {
		n.IconPath = ResolveIcon(n.IconPath)
	}
	if n.IconPath == "" {
		d.logger.Debug("icon not found, sending without icon", "icon_path", d.config.IconPath)
	}

	for _, s := range d.senders {
		if err := s.Send(n); err != nil {
			d.logger.Warn("notifier failed", "sender", s.Name(), "error", err)
			continue
		}
		d.logger.Debug("notifier launched", "sender", s.Name(), "title", n.Title)
	}
}
