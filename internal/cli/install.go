package cli

import (
	"fmt"
	"path/filepath"

	"github.com/ariel-frischer/claude-notify/internal/claude"
	"github.com/ariel-frischer/claude-notify/internal/hook"
	"github.com/spf13/cobra"
)

// settingsTarget holds the flags shared by install and uninstall.
type settingsTarget struct {
	settingsPath string
	binary       string
	dryRun       bool
}

func (t *settingsTarget) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&t.settingsPath, "settings", "", "Claude settings file (default: ~/.claude/settings.json)")
	cmd.Flags().StringVar(&t.binary, "binary", "", "claude-notify executable the hooks run (default: this executable)")
	cmd.Flags().BoolVar(&t.dryRun, "dry-run", false, "Print the resulting settings instead of writing them")
}

// load resolves the flag defaults and reads the settings file.
func (t *settingsTarget) load(deps dependencies) (*claude.Settings, string, error) {
	settingsPath := t.settingsPath
	if settingsPath == "" {
		p, err := claude.DefaultSettingsPath()
		if err != nil {
			return nil, "", err
		}
		settingsPath = p
	}

	binary := t.binary
	if binary == "" {
		exe, err := deps.executable()
		if err != nil {
			return nil, "", fmt.Errorf("resolving executable: %w", err)
		}
		binary = exe
	}
	if abs, err := filepath.Abs(binary); err == nil {
		binary = abs
	}

	settings, err := claude.Load(settingsPath)
	if err != nil {
		return nil, "", err
	}
	return settings, binary, nil
}

func newInstallCmd(deps dependencies) *cobra.Command {
	var target settingsTarget

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Register the claude-notify hooks in Claude settings",
		Long: `Add the claude-notify hooks to the Claude settings file:
  - Stop              runs 'claude-notify stop'
  - Notification      runs 'claude-notify notification' (idle_prompt|permission_prompt)
  - PermissionRequest runs 'claude-notify permission'

Hooks that are already registered are left alone. Other settings and hooks are preserved.`,
		Example: `  claude-notify install
  claude-notify install --settings .claude/settings.json
  claude-notify install --dry-run`,
		GroupID: GroupSetup,
		Args:    usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, binary, err := target.load(deps)
			if err != nil {
				return err
			}

			added, err := settings.AddHooks(binary)
			if err != nil {
				return fmt.Errorf("failed to add hooks: %w", err)
			}

			out := cmd.OutOrStdout()
			if target.dryRun {
				out.Write(settings.Bytes())
				return nil
			}

			if len(added) == 0 {
				fmt.Fprintf(out, "Hooks already registered in %s\n", settings.FilePath())
				return nil
			}

			if err := settings.Save(); err != nil {
				return fmt.Errorf("failed to save settings: %w", err)
			}

			fmt.Fprintf(out, "Registering hooks in %s...\n", settings.FilePath())
			routes := make(map[string]hook.Route, len(claude.HookEntries))
			for _, e := range claude.HookEntries {
				routes[e.Event] = e.Route
			}
			for _, event := range added {
				fmt.Fprintf(out, "  + %s -> %s\n", event, claude.HookCommand(binary, routes[event]))
			}
			fmt.Fprintf(out, "\nDone: %d hooks registered\n", len(added))
			fmt.Fprintln(out, "Run 'claude-notify doctor' to check the notifiers")
			return nil
		},
	}
	target.register(cmd)
	return cmd
}

func newUninstallCmd(deps dependencies) *cobra.Command {
	var target settingsTarget

	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the claude-notify hooks from Claude settings",
		Long: `Remove every hook command that runs this claude-notify executable from the
Claude settings file. Other hooks and settings are preserved.`,
		Example: `  claude-notify uninstall
  claude-notify uninstall --dry-run`,
		GroupID: GroupSetup,
		Args:    usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, binary, err := target.load(deps)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !settings.Exists() {
				fmt.Fprintf(out, "%s not found, nothing to remove\n", settings.FilePath())
				return nil
			}

			removed, err := settings.RemoveHooks(binary)
			if err != nil {
				return fmt.Errorf("failed to remove hooks: %w", err)
			}

			if target.dryRun {
				out.Write(settings.Bytes())
				return nil
			}

			if removed == 0 {
				fmt.Fprintf(out, "No claude-notify hooks found in %s\n", settings.FilePath())
				return nil
			}

			if err := settings.Save(); err != nil {
				return fmt.Errorf("failed to save settings: %w", err)
			}
			fmt.Fprintf(out, "  - removed %d hooks from %s\n", removed, settings.FilePath())
			return nil
		},
	}
	target.register(cmd)
	return cmd
}
