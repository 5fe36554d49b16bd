//go:build !darwin && !linux && !windows

package notify

func newSystemSender(_ Launcher) Sender {
	return &noopSender{}
}
