package cli

import (
	"encoding/json"
	"fmt"

	"github.com/ariel-frischer/claude-notify/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Inspect the resolved configuration",
		GroupID: GroupSetup,
		Args:    usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the merged configuration as JSON",
		Long: `Print the configuration a hook run would use, after merging defaults,
~/.claude/notify.json, the project config and CLAUDE_NOTIFY_* environment variables.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, string(data))

			if len(cfg.Sources) == 0 {
				fmt.Fprintln(out, dim("# sources: defaults only"))
				return nil
			}
			for _, src := range cfg.Sources {
				fmt.Fprintln(out, dim("# source: "+src))
			}
			return nil
		},
	})
	return cmd
}
