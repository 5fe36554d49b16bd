package notify

// nativeSender runs the bundled notifier app:
//
//	<notifier> <title> <message> <Sound>.aiff [icon]
type nativeSender struct {
	path     string
	launcher Launcher
}

func newNativeSender(path string, l Launcher) Sender {
	return &nativeSender{path: path, launcher: l}
}

func (s *nativeSender) Name() string { return "native" }

func (s *nativeSender) Available() bool { return toolAvailable(s.path) }

func (s *nativeSender) Send(n Notification) error {
	args := []string{n.Title, n.Message, nativeSound(n.Sound)}
	if n.IconPath != "" {
		args = append(args, n.IconPath)
	}
	return s.launcher.Start(s.path, args...)
}

// nativeSound qualifies a bare sound name with the bundle resource extension
func nativeSound(name string) string {
	if name == "" {
		return ""
	}
	return name + ".aiff"
}
