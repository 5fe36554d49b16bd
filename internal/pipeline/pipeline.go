// Package pipeline runs one hook invocation from stdin to notifier launch.
package pipeline

import (
	"errors"
	"io"
	"log/slog"

	"github.com/ariel-frischer/claude-notify/internal/hook"
	"github.com/ariel-frischer/claude-notify/internal/message"
	"github.com/ariel-frischer/claude-notify/internal/notify"
)

// Outcome reports how an invocation ended. Every outcome maps to exit status 0.
type Outcome int

const (
	// Dispatched means a notification was handed to the notifiers.
	Dispatched Outcome = iota
	// NoInput means stdin was empty or a terminal.
	NoInput
	// Malformed means stdin was not a JSON object.
	Malformed
	// Skipped means the loop guard suppressed a re-entrant completion event.
	Skipped
	// Ignored means the event has no notification on this route.
	Ignored
	// Failed means the run panicked and was recovered.
	Failed
)

var outcomeNames = [...]string{
	Dispatched: "dispatched",
	NoInput:    "no_input",
	Malformed:  "malformed",
	Skipped:    "skipped",
	Ignored:    "ignored",
	Failed:     "failed",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[o]
}

// Dispatcher delivers a resolved notification. It must not fail.
type Dispatcher interface {
	Dispatch(n notify.Notification)
}

// Pipeline wires the event reader, loop guard, message builder and dispatcher.
type Pipeline struct {
	builder    *message.Builder
	dispatcher Dispatcher
	logger     *slog.Logger
}

// New creates a Pipeline.
func New(builder *message.Builder, dispatcher Dispatcher, logger *slog.Logger) *Pipeline {
	return &Pipeline{builder: builder, dispatcher: dispatcher, logger: logger}
}

// Run handles the single event read from r. It never returns an error and
// recovers any panic, so callers can always exit successfully.
func (p *Pipeline) Run(route hook.Route, r io.Reader) (outcome Outcome) {
	defer func() {
		if rec := recover(); rec != nil {
			p.logger.Error("hook run panicked", "route", string(route), "panic", rec)
			outcome = Failed
		}
	}()

	outcome = p.run(route, r)
	p.logger.Debug("hook run finished", "route", string(route), "outcome", outcome.String())
	return outcome
}

func (p *Pipeline) run(route hook.Route, r io.Reader) Outcome {
	ev, err := hook.Read(r)
	switch {
	case errors.Is(err, hook.ErrNoInput):
		return NoInput
	case err != nil:
		p.logger.Info("ignoring unreadable hook payload", "error", err)
		return Malformed
	}

	kind, ok := route.Resolve(ev)
	if !ok {
		p.logger.Info("no notification for hook event", "hook_event_name", ev.HookEventName)
		return Ignored
	}

	if hook.ShouldSkip(kind, ev) {
		p.logger.Debug("stop hook already active, not notifying", "session_id", ev.SessionID)
		return Skipped
	}

	n := p.builder.Build(kind, ev)
	p.logger.Info("dispatching notification",
		"kind", kind.String(),
		"title", n.Title,
		"session_id", ev.SessionID,
	)
	p.dispatcher.Dispatch(n)
	return Dispatched
}
