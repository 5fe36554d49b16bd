package cli

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/ariel-frischer/claude-notify/internal/notify"
	"github.com/ariel-frischer/claude-notify/internal/pipeline"
)

type recordingDispatcher struct {
	cfg  notify.Config
	sent []notify.Notification
}

func (r *recordingDispatcher) Dispatch(n notify.Notification) {
	r.sent = append(r.sent, n)
}

func testDeps(rec *recordingDispatcher, exe string) dependencies {
	return dependencies{
		newDispatcher: func(cfg notify.Config, _ *slog.Logger) pipeline.Dispatcher {
			rec.cfg = cfg
			return rec
		},
		executable: func() (string, error) { return exe, nil },
	}
}

func execute(t *testing.T, deps dependencies, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(deps)
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}
