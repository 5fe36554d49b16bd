//go:build windows

package notify

// windowsSender shows toast notifications through PowerShell
type windowsSender struct {
	launcher Launcher
}

func newSystemSender(l Launcher) Sender {
	return &windowsSender{launcher: l}
}

func (s *windowsSender) Name() string { return "powershell" }

func (s *windowsSender) Available() bool { return toolAvailable("powershell") }

func (s *windowsSender) Send(n Notification) error {
	return s.launcher.Start("powershell", "-ExecutionPolicy", "Bypass", "-NoProfile", "-Command", toastScript(n))
}
