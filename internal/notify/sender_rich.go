package notify

import (
	"encoding/json"
	"fmt"
)

// terminalNotifierSender runs terminal-notifier with named flags
type terminalNotifierSender struct {
	cmd      string
	activate string
	launcher Launcher
}

func newTerminalNotifierSender(cmd, activate string, l Launcher) Sender {
	return &terminalNotifierSender{cmd: cmd, activate: activate, launcher: l}
}

func (s *terminalNotifierSender) Name() string { return "terminal-notifier" }

func (s *terminalNotifierSender) Available() bool { return toolAvailable(s.cmd) }

func (s *terminalNotifierSender) Send(n Notification) error {
	return s.launcher.Start(s.cmd, terminalNotifierArgs(n, s.activate)...)
}

func terminalNotifierArgs(n Notification, activate string) []string {
	args := []string{
		"-title", n.Title,
		"-message", n.Message,
		"-sound", n.Sound,
	}
	if activate != "" {
		args = append(args, "-activate", activate)
	}
	if n.IconPath != "" {
		args = append(args, "-contentImage", n.IconPath)
	}
	return args
}

// companionPayload is the document written to the companion's stdin
type companionPayload struct {
	Title            string `json:"title"`
	Message          string `json:"message"`
	HookEventName    string `json:"hook_event_name"`
	NotificationType string `json:"notification_type"`
	SessionID        string `json:"session_id"`
	TranscriptPath   string `json:"transcript_path"`
	Cwd              string `json:"cwd"`
	PermissionMode   string `json:"permission_mode"`
}

// companionSender feeds the notification to an editor companion process
// as JSON and waits for it to consume the input.
type companionSender struct {
	cmd      string
	launcher Launcher
}

func newCompanionSender(cmd string, l Launcher) Sender {
	return &companionSender{cmd: cmd, launcher: l}
}

func (s *companionSender) Name() string { return "companion" }

func (s *companionSender) Available() bool { return toolAvailable(s.cmd) }

func (s *companionSender) Send(n Notification) error {
	payload, err := companionDocument(n)
	if err != nil {
		return fmt.Errorf("encoding companion payload: %w", err)
	}
	return s.launcher.Feed(payload, s.cmd, "--sound", n.Sound)
}

func companionDocument(n Notification) ([]byte, error) {
	p := companionPayload{
		Title:          n.Title,
		Message:        n.Message,
		PermissionMode: "default",
	}
	if c := n.Context; c != nil {
		p.HookEventName = c.HookEventName
		p.NotificationType = c.NotificationType
		p.SessionID = c.SessionID
		p.TranscriptPath = c.TranscriptPath
		p.Cwd = c.Cwd
		if c.PermissionMode != "" {
			p.PermissionMode = c.PermissionMode
		}
	}
	return json.Marshal(p)
}
