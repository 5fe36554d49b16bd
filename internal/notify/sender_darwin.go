//go:build darwin

package notify

// darwinSender shows notifications through osascript
type darwinSender struct {
	launcher Launcher
}

func newSystemSender(l Launcher) Sender {
	return &darwinSender{launcher: l}
}

func (s *darwinSender) Name() string { return "osascript" }

func (s *darwinSender) Available() bool { return toolAvailable("osascript") }

func (s *darwinSender) Send(n Notification) error {
	return s.launcher.Start("osascript", "-e", appleScript(n))
}
