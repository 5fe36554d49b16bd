package hook

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tidwall/gjson"
	"golang.org/x/term"
)

var (
	// ErrNoInput is returned when stdin is empty or attached to a terminal.
	ErrNoInput = errors.New("no hook payload on stdin")

	// ErrMalformed is returned when the payload is not a single JSON object.
	ErrMalformed = errors.New("hook payload is not a JSON object")
)

// Event is one hook payload. It lives for a single invocation.
type Event struct {
	HookEventName    string
	NotificationType string
	// Message is nil when the payload has no string "message" field.
	Message        *string
	ToolName       string
	ToolInput      ToolInput
	TranscriptPath string
	SessionID      string
	Cwd            string
	PermissionMode string
	StopHookActive bool
}

// ToolInput is the raw tool_input object of a permission event.
type ToolInput []byte

// String returns the named field when it holds a JSON string, or "" when the
// field is missing, not a string, or the input is not an object.
func (t ToolInput) String(field string) string {
	if len(t) == 0 {
		return ""
	}
	res := gjson.GetBytes(t, gjson.Escape(field))
	if res.Type != gjson.String {
		return ""
	}
	return res.Str
}

// Read consumes r once and parses it as a hook payload.
func Read(r io.Reader) (*Event, error) {
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, ErrNoInput
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading hook payload: %w", err)
	}
	return Parse(data)
}

// Parse decodes a hook payload held in memory.
func Parse(data []byte) (*Event, error) {
	if len(data) == 0 {
		return nil, ErrNoInput
	}
	if !gjson.ValidBytes(data) {
		return nil, ErrMalformed
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, ErrMalformed
	}

	ev := &Event{
		HookEventName:    stringField(root, "hook_event_name"),
		NotificationType: stringField(root, "notification_type"),
		ToolName:         stringField(root, "tool_name"),
		TranscriptPath:   stringField(root, "transcript_path"),
		SessionID:        stringField(root, "session_id"),
		Cwd:              stringField(root, "cwd"),
		PermissionMode:   stringField(root, "permission_mode"),
		StopHookActive:   root.Get("stop_hook_active").Type == gjson.True,
	}
	if msg := root.Get("message"); msg.Type == gjson.String {
		text := msg.Str
		ev.Message = &text
	}
	if in := root.Get("tool_input"); in.IsObject() {
		ev.ToolInput = ToolInput(in.Raw)
	}
	return ev, nil
}

func stringField(root gjson.Result, name string) string {
	res := root.Get(name)
	if res.Type != gjson.String {
		return ""
	}
	return res.Str
}
