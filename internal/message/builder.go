package message

import (
	"github.com/ariel-frischer/claude-notify/internal/hook"
	"github.com/ariel-frischer/claude-notify/internal/notify"
	"github.com/ariel-frischer/claude-notify/internal/textutil"
)

const (
	// MessageLimit is the longest body a notification may carry.
	MessageLimit = 120

	// Placeholder is used when a notification event has no message.
	Placeholder = "Claude is waiting"

	defaultTitle = "Claude Code"
	defaultSound = "Glass"
)

type presentation struct {
	title string
	sound string
}

var presentations = [hook.KindCount]presentation{
	hook.KindPermissionPrompt:  {title: "Permission Required", sound: "Glass"},
	hook.KindIdlePrompt:        {title: defaultTitle, sound: "Glass"},
	hook.KindAuthSuccess:       {title: defaultTitle, sound: "Glass"},
	hook.KindElicitationDialog: {title: defaultTitle, sound: "Glass"},
	hook.KindCompletion:        {title: defaultTitle, sound: "Funk"},
	hook.KindUnknown:           {title: defaultTitle, sound: defaultSound},
}

// Presentation returns the title and sound for kind. Out of range kinds get
// the default pair.
func Presentation(kind hook.Kind) (title, sound string) {
	if kind < 0 || kind >= hook.KindCount {
		return defaultTitle, defaultSound
	}
	p := presentations[kind]
	return p.title, p.sound
}

// Builder resolves notifications for hook events.
type Builder struct {
	iconPath  string
	summarize func(transcriptPath string) string
}

// NewBuilder returns a Builder. summarize produces the completion message
// from a transcript path and must never fail.
func NewBuilder(iconPath string, summarize func(string) string) *Builder {
	return &Builder{iconPath: iconPath, summarize: summarize}
}

// Build resolves the notification for ev presented as kind. The icon path is
// passed through unchecked.
func (b *Builder) Build(kind hook.Kind, ev *hook.Event) notify.Notification {
	title, sound := Presentation(kind)
	return notify.Notification{
		Title:    title,
		Message:  b.body(kind, ev),
		Sound:    sound,
		IconPath: b.iconPath,
		Context:  contextFor(kind, ev),
	}
}

func (b *Builder) body(kind hook.Kind, ev *hook.Event) string {
	switch kind {
	case hook.KindCompletion:
		// already clipped to MessageLimit
		return b.summarize(ev.TranscriptPath)
	case hook.KindPermissionPrompt:
		// Notification events name no tool; they read like any other notification.
		if ev.ToolName != "" || (ev.NotificationType == "" && ev.Message == nil) {
			return textutil.Bound(PermissionMessage(ev.ToolName, ev.ToolInput), MessageLimit)
		}
		fallthrough
	default:
		if ev.Message == nil {
			return Placeholder
		}
		return textutil.Bound(*ev.Message, MessageLimit)
	}
}

func contextFor(kind hook.Kind, ev *hook.Event) *notify.Context {
	notificationType := kind.String()
	if kind == hook.KindUnknown {
		notificationType = ev.NotificationType
	}
	return &notify.Context{
		HookEventName:    kind.HookEventName(),
		NotificationType: notificationType,
		SessionID:        ev.SessionID,
		TranscriptPath:   ev.TranscriptPath,
		Cwd:              ev.Cwd,
		PermissionMode:   ev.PermissionMode,
	}
}
