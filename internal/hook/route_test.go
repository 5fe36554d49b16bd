package hook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindFromNotificationType(t *testing.T) {
	t.Parallel()

	tests := map[string]Kind{
		"permission_prompt":  KindPermissionPrompt,
		"idle_prompt":        KindIdlePrompt,
		"auth_success":       KindAuthSuccess,
		"elicitation_dialog": KindElicitationDialog,
		"stop":               KindUnknown,
		"":                   KindUnknown,
		"something_new":      KindUnknown,
	}

	for input, expected := range tests {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, expected, KindFromNotificationType(input))
		})
	}
}

func TestKind_Names(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "permission_prompt", KindPermissionPrompt.String())
	assert.Equal(t, "stop", KindCompletion.String())
	assert.Equal(t, "", KindUnknown.String())
	assert.Equal(t, "", Kind(99).String())

	assert.Equal(t, "Stop", KindCompletion.HookEventName())
	assert.Equal(t, "Notification", KindPermissionPrompt.HookEventName())
	assert.Equal(t, "Notification", KindUnknown.HookEventName())
}

func TestRoute_Resolve(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		route    Route
		event    Event
		wantKind Kind
		wantOK   bool
	}{
		"stop route": {
			route:    RouteStop,
			wantKind: KindCompletion,
			wantOK:   true,
		},
		"permission route ignores notification_type": {
			route:    RoutePermission,
			event:    Event{NotificationType: "idle_prompt"},
			wantKind: KindPermissionPrompt,
			wantOK:   true,
		},
		"notification route idle": {
			route:    RouteNotification,
			event:    Event{NotificationType: "idle_prompt"},
			wantKind: KindIdlePrompt,
			wantOK:   true,
		},
		"notification route unknown type still notifies": {
			route:    RouteNotification,
			event:    Event{NotificationType: "brand_new"},
			wantKind: KindUnknown,
			wantOK:   true,
		},
		"auto route stop": {
			route:    RouteAuto,
			event:    Event{HookEventName: "Stop"},
			wantKind: KindCompletion,
			wantOK:   true,
		},
		"auto route subagent stop": {
			route:    RouteAuto,
			event:    Event{HookEventName: "SubagentStop"},
			wantKind: KindCompletion,
			wantOK:   true,
		},
		"auto route permission request": {
			route:    RouteAuto,
			event:    Event{HookEventName: "PermissionRequest"},
			wantKind: KindPermissionPrompt,
			wantOK:   true,
		},
		"auto route notification": {
			route:    RouteAuto,
			event:    Event{HookEventName: "Notification", NotificationType: "auth_success"},
			wantKind: KindAuthSuccess,
			wantOK:   true,
		},
		"auto route unhandled event": {
			route:  RouteAuto,
			event:  Event{HookEventName: "PostToolUse"},
			wantOK: false,
		},
		"unknown route": {
			route:  Route("bogus"),
			wantOK: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			kind, ok := tt.route.Resolve(&tt.event)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantKind, kind)
			}
		})
	}
}

func TestShouldSkip(t *testing.T) {
	t.Parallel()

	active := &Event{StopHookActive: true}
	inactive := &Event{}

	assert.True(t, ShouldSkip(KindCompletion, active))
	assert.False(t, ShouldSkip(KindCompletion, inactive))
	assert.False(t, ShouldSkip(KindPermissionPrompt, active), "flag only guards completion events")
	assert.False(t, ShouldSkip(KindIdlePrompt, active))
}
