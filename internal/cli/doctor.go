package cli

import (
	"fmt"
	"io"

	"github.com/ariel-frischer/claude-notify/internal/claude"
	"github.com/ariel-frischer/claude-notify/internal/config"
	"github.com/ariel-frischer/claude-notify/internal/health"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

func newDoctorCmd(deps dependencies) *cobra.Command {
	var (
		plain        bool
		settingsPath string
		binary       string
	)

	cmd := &cobra.Command{
		Use:     "doctor",
		Aliases: []string{"doc"},
		Short:   "Check notifiers, icon and hook registration (doc)",
		Long: `Run health checks:
  - Configuration loads and validates
  - Each notifier of the configured backend can be found
  - The notification icon exists (warning only)
  - The hooks are registered in the Claude settings file (warning only)`,
		Example: `  # Check everything
  claude-notify doctor

  # Plain output (for scripts)
  claude-notify doctor --plain`,
		GroupID: GroupSetup,
		Args:    usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, cfgErr := config.Load(configPath)
			if cfgErr != nil {
				cfg = config.Default()
			}

			if settingsPath == "" {
				settingsPath, _ = claude.DefaultSettingsPath()
			}
			if binary == "" {
				binary, _ = deps.executable()
			}

			report := health.RunHealthChecks(health.Options{
				Config:       cfg,
				ConfigErr:    cfgErr,
				SettingsPath: settingsPath,
				Binary:       binary,
			})

			out := cmd.OutOrStdout()
			if plain {
				fmt.Fprint(out, health.FormatReport(report))
			} else {
				renderReport(out, report)
			}

			if !report.Passed {
				return NewExitError(ExitFailure)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Plain output without a table")
	cmd.Flags().StringVar(&settingsPath, "settings", "", "Claude settings file (default: ~/.claude/settings.json)")
	cmd.Flags().StringVar(&binary, "binary", "", "claude-notify executable the hooks should run (default: this executable)")
	return cmd
}

func renderReport(w io.Writer, report *health.HealthReport) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"", "Check", "Detail"})
	for _, c := range report.Checks {
		tw.AppendRow(table.Row{statusMark(c), c.Name, c.Message})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignCenter},
		{Number: 3, WidthMax: max(terminalWidth(w)-30, 30)},
	})
	tw.Render()

	if report.Passed {
		fmt.Fprintln(w, green("All checks passed"))
	} else {
		fmt.Fprintln(w, red("Some checks failed"))
	}
}

func statusMark(c health.CheckResult) string {
	switch {
	case !c.Passed:
		return red("✗")
	case c.Warning:
		return yellow("!")
	default:
		return green("✓")
	}
}
