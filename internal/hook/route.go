package hook

// Route names the hook command an event arrived through.
type Route string

const (
	RouteStop         Route = "stop"
	RouteNotification Route = "notification"
	RoutePermission   Route = "permission"
	// RouteAuto picks the kind from the payload's hook_event_name.
	RouteAuto Route = "hook"
)

// Resolve returns the Kind ev should be presented as. ok is false when the
// event cannot be notified about on this route, which is only possible for
// RouteAuto with an unhandled hook_event_name.
func (r Route) Resolve(ev *Event) (Kind, bool) {
	switch r {
	case RouteStop:
		return KindCompletion, true
	case RoutePermission:
		return KindPermissionPrompt, true
	case RouteNotification:
		return KindFromNotificationType(ev.NotificationType), true
	case RouteAuto:
		switch ev.HookEventName {
		case "Stop", "SubagentStop":
			return KindCompletion, true
		case "PermissionRequest":
			return KindPermissionPrompt, true
		case "Notification":
			return KindFromNotificationType(ev.NotificationType), true
		}
	}
	return KindUnknown, false
}

// ShouldSkip reports whether the pipeline must stop before notifying. It is
// true for completion events the host raised while already continuing from a
// previous stop hook; notifying again would loop.
func ShouldSkip(kind Kind, ev *Event) bool {
	return kind == KindCompletion && ev.StopHookActive
}
