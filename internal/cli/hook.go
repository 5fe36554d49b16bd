package cli

import (
	"github.com/ariel-frischer/claude-notify/internal/config"
	"github.com/ariel-frischer/claude-notify/internal/hook"
	"github.com/ariel-frischer/claude-notify/internal/logging"
	"github.com/ariel-frischer/claude-notify/internal/message"
	"github.com/ariel-frischer/claude-notify/internal/pipeline"
	"github.com/ariel-frischer/claude-notify/internal/transcript"
	"github.com/spf13/cobra"
)

var hookCommands = []struct {
	route hook.Route
	short string
	long  string
}{
	{
		route: hook.RouteStop,
		short: "Handle a Stop hook event",
		long: `Notify that Claude finished, using the last assistant message of the session
transcript as the body. Does nothing when stop_hook_active is set.`,
	},
	{
		route: hook.RouteNotification,
		short: "Handle a Notification hook event",
		long:  `Notify for idle_prompt, permission_prompt, auth_success and elicitation_dialog events.`,
	},
	{
		route: hook.RoutePermission,
		short: "Handle a PermissionRequest hook event",
		long:  `Notify that a tool call needs permission, naming the command, file or URL involved.`,
	},
	{
		route: hook.RouteAuto,
		short: "Handle any supported hook event, routed on hook_event_name",
		long: `Pick the handler from the payload's hook_event_name (Stop, SubagentStop,
Notification or PermissionRequest). Other events are ignored.`,
	},
}

func addHookCommands(root *cobra.Command, deps dependencies) {
	for _, hc := range hookCommands {
		route := hc.route
		cmd := &cobra.Command{
			Use:                string(route),
			Short:              hc.short,
			Long:               hc.long + "\n\nReads one JSON event from stdin and always exits 0.",
			GroupID:            GroupHooks,
			Args:               cobra.ArbitraryArgs,
			FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
			Run: func(cmd *cobra.Command, _ []string) {
				runHook(cmd, route, deps, nil)
			},
		}
		// A mangled command line still gets its notification, with flags
		// that failed to parse left at their defaults.
		cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
			runHook(cmd, route, deps, err)
			return nil
		})
		root.AddCommand(cmd)
	}
}

// runHook handles one hook invocation. Nothing in here may turn into an
// error or a non-zero exit.
func runHook(cmd *cobra.Command, route hook.Route, deps dependencies, flagErr error) {
	logger := logging.Discard()
	var closeLog func() error
	defer func() {
		if r := recover(); r != nil {
			logger.Error("hook command panicked", "route", string(route), "panic", r)
		}
		if closeLog != nil {
			_ = closeLog()
		}
	}()

	configPath, _ := cmd.Flags().GetString("config")
	cfg, cfgErr := config.Load(configPath)
	if cfgErr != nil {
		cfg = config.Default()
	}

	fileLogger, closer, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err == nil {
		logger = fileLogger
		closeLog = closer.Close
	}
	logger = logging.WithInvocation(logger)
	if flagErr != nil {
		logger.Warn("ignoring unparseable hook flags", "error", flagErr)
	}
	if cfgErr != nil {
		logger.Warn("config load failed, using defaults", "error", cfgErr)
	}

	p := pipeline.New(
		message.NewBuilder(cfg.IconPath, transcript.Summarize),
		deps.newDispatcher(cfg.Notify(), logger),
		logger,
	)
	p.Run(route, cmd.InOrStdin())
}
