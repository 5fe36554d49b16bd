package hook

// Kind identifies the lifecycle point that produced an event.
type Kind int

const (
	KindPermissionPrompt Kind = iota
	KindIdlePrompt
	KindAuthSuccess
	KindElicitationDialog
	KindCompletion
	// KindUnknown is a Notification event whose notification_type is not
	// recognised.
	KindUnknown

	// KindCount is the number of kinds; tables indexed by Kind use it as
	// their length.
	KindCount
)

var kindNames = [KindCount]string{
	KindPermissionPrompt:  "permission_prompt",
	KindIdlePrompt:        "idle_prompt",
	KindAuthSuccess:       "auth_success",
	KindElicitationDialog: "elicitation_dialog",
	KindCompletion:        "stop",
	KindUnknown:           "",
}

// String returns the notification_type wire name of k. KindCompletion maps
// to "stop" and KindUnknown to the empty string.
func (k Kind) String() string {
	if k < 0 || k >= KindCount {
		return ""
	}
	return kindNames[k]
}

// HookEventName returns the hook_event_name reported to companion processes.
func (k Kind) HookEventName() string {
	if k == KindCompletion {
		return "Stop"
	}
	return "Notification"
}

// KindFromNotificationType maps a notification_type value to its Kind.
// Unrecognised values yield KindUnknown.
func KindFromNotificationType(notificationType string) Kind {
	for k := KindPermissionPrompt; k < KindCompletion; k++ {
		if kindNames[k] == notificationType {
			return k
		}
	}
	return KindUnknown
}
