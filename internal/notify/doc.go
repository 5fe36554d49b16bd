// Package notify delivers hook notifications through external notifier
// processes.
//
// Every backend is an os/exec call to a native tool, so the binary stays
// CGO_ENABLED=0 and the package has no notification-center bindings of its
// own. Delivery is fire-and-forget: a notifier is started and never waited
// on, and any failure (missing binary, crash, bad arguments) is logged at
// most. Nothing here can block or fail a hook run.
//
// # Backends
//
//   - native: a bundled notifier app taking four positional arguments
//     (title, message, sound resource, icon). Sound names are qualified with
//     ".aiff" because the app resolves them from its bundle resources.
//   - rich: terminal-notifier with named flags, plus an optional companion
//     process fed a JSON document on stdin for editor integration.
//   - system: the OS's own tool (osascript, notify-send, PowerShell).
//
// # Usage
//
//	d := notify.NewDispatcher(notify.DefaultConfig(), logger)
//	d.Dispatch(notify.NewNotification("Claude Code", "Task complete", "Funk"))
package notify
