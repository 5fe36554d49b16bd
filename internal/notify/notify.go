package notify

// Backend selects which notifier processes a Dispatcher launches.
type Backend string

const (
	// BackendNative launches the bundled notifier app with positional arguments
	BackendNative Backend = "native"
	// BackendRich launches terminal-notifier and the companion process
	BackendRich Backend = "rich"
	// BackendSystem uses the operating system's own notification tool
	BackendSystem Backend = "system"
)

// ValidBackend checks if the given string is a valid backend name
func ValidBackend(s string) bool {
	switch Backend(s) {
	case BackendNative, BackendRich, BackendSystem:
		return true
	default:
		return false
	}
}

// Config holds the resolved backend settings.
type Config struct {
	// Backend picks the notifier set (default: native)
	Backend Backend `json:"backend"`

	// IconPath is the image shown with the notification. Missing files are
	// tolerated; the icon argument is then left out.
	IconPath string `json:"icon_path"`

	// NotifierPath is the native notifier executable
	NotifierPath string `json:"notifier_path"`

	// TerminalNotifierCmd is the rich backend's primary notifier
	TerminalNotifierCmd string `json:"terminal_notifier_cmd"`

	// ActivateBundle is the application brought forward on click (rich only)
	ActivateBundle string `json:"activate_bundle"`

	// CompanionCmd receives the notification as JSON on stdin (rich only)
	CompanionCmd string `json:"companion_cmd"`

	// CompanionEnabled turns the companion process on or off
	CompanionEnabled bool `json:"companion_enabled"`
}

// DefaultConfig returns a Config with default values. Paths are left
// unexpanded ("~/...").
func DefaultConfig() Config {
	return Config{
		Backend:             BackendNative,
		IconPath:            "~/.claude/icons/claude.png",
		NotifierPath:        "~/.claude/ClaudeNotifier.app/Contents/MacOS/ClaudeNotifier",
		TerminalNotifierCmd: "terminal-notifier",
		ActivateBundle:      "com.microsoft.VSCode",
		CompanionCmd:        "claude-code-notification",
		CompanionEnabled:    true,
	}
}

// Context is the session data forwarded to the companion process.
type Context struct {
	HookEventName    string
	NotificationType string
	SessionID        string
	TranscriptPath   string
	Cwd              string
	PermissionMode   string
}

// Notification is one fully resolved notification.
type Notification struct {
	Title   string
	Message string

	// Sound is a bare sound name such as "Glass"; each backend qualifies it
	// the way its notifier expects.
	Sound string

	// IconPath is empty when there is no icon to show.
	IconPath string

	// Context is optional and only read by the companion process.
	Context *Context
}

// NewNotification creates a new Notification with the given parameters
func NewNotification(title, message, sound string) Notification {
	return Notification{
		Title:   title,
		Message: message,
		Sound:   sound,
	}
}
