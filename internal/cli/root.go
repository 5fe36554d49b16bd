// claude-notify - desktop notifications for Claude Code hooks
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/claude-notify

// Package cli provides the Cobra commands of claude-notify: the hook
// handlers Claude Code invokes and the setup commands a user runs by hand.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/ariel-frischer/claude-notify/internal/config"
	"github.com/ariel-frischer/claude-notify/internal/notify"
	"github.com/ariel-frischer/claude-notify/internal/pipeline"
	"github.com/spf13/cobra"
)

// Command group IDs for organizing help output
const (
	GroupHooks = "hooks"
	GroupSetup = "setup"
)

// SourceURL is the project source URL
const SourceURL = "https://github.com/ariel-frischer/claude-notify"

// dependencies are the process-level collaborators the commands reach for.
// Tests swap them so nothing is launched.
type dependencies struct {
	newDispatcher func(cfg notify.Config, logger *slog.Logger) pipeline.Dispatcher
	executable    func() (string, error)
}

func defaultDependencies() dependencies {
	return dependencies{
		newDispatcher: func(cfg notify.Config, logger *slog.Logger) pipeline.Dispatcher {
			return notify.NewDispatcher(cfg, logger)
		},
		executable: os.Executable,
	}
}

// NewRootCmd builds the claude-notify command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(defaultDependencies())
}

func newRootCmd(deps dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "claude-notify",
		Short: "Desktop notifications for Claude Code hooks",
		Long: `claude-notify shows a desktop notification when Claude Code finishes a task,
waits for input, or asks for permission to run a tool.

Claude Code runs the hook commands with the event JSON on stdin. They never fail:
malformed input, missing notifiers and unreadable transcripts all end in exit 0.`,
		Example: `  # Register the hooks in ~/.claude/settings.json
  claude-notify install

  # Check notifiers, icon and hook registration
  claude-notify doctor

  # Try a notification by hand
  echo '{"notification_type":"idle_prompt","message":"hi"}' | claude-notify notification`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	rootCmd.SetFlagErrorFunc(flagUsageError)

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupHooks, Title: "Hook Commands:"},
		&cobra.Group{ID: GroupSetup, Title: "Setup:"},
	)
	rootCmd.SetHelpCommandGroupID(GroupSetup)
	rootCmd.SetCompletionCommandGroupID(GroupSetup)

	rootCmd.PersistentFlags().StringP("config", "c", config.ProjectConfigPath, "Path to project config file")

	addHookCommands(rootCmd, deps)
	rootCmd.AddCommand(
		newInstallCmd(deps),
		newUninstallCmd(deps),
		newDoctorCmd(deps),
		newConfigCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	var ee *exitError
	if err != nil && !errors.As(err, &ee) {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}
	return ExitCode(err)
}
