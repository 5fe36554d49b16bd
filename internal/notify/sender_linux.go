//go:build linux

package notify

import "os"

// linuxSender shows notifications through notify-send
type linuxSender struct {
	launcher Launcher
}

func newSystemSender(l Launcher) Sender {
	return &linuxSender{launcher: l}
}

func (s *linuxSender) Name() string { return "notify-send" }

func (s *linuxSender) Available() bool {
	return toolAvailable("notify-send") && hasDisplay()
}

// hasDisplay checks if a display environment is available
func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

func (s *linuxSender) Send(n Notification) error {
	if !hasDisplay() {
		return nil
	}
	return s.launcher.Start("notify-send", notifySendArgs(n)...)
}
