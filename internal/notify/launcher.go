package notify

import (
	"bytes"
	"fmt"
	"os/exec"
)

// Launcher runs notifier processes.
type Launcher interface {
	// Start launches a process and returns without waiting for it. The child
	// is detached: its exit status is never collected.
	Start(name string, args ...string) error

	// Feed runs a process with stdin as its input and waits until it exits.
	// Output is discarded.
	Feed(stdin []byte, name string, args ...string) error
}

// ExecLauncher launches processes with os/exec. Stdout and stderr of every
// child go to the null device.
type ExecLauncher struct{}

// Start implements Launcher.
func (ExecLauncher) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", name, err)
	}
	return cmd.Process.Release()
}

// Feed implements Launcher.
func (ExecLauncher) Feed(stdin []byte, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = bytes.NewReader(stdin)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", name, err)
	}
	return nil
}
