package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/ariel-frischer/claude-notify/internal/build"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Display version information (v)",
		Long:    "Display version, commit, build date, and Go version information for claude-notify",
		Example: `  # Show version info
  claude-notify version

  # Plain output (for scripts)
  claude-notify version --plain`,
		GroupID: GroupSetup,
		Args:    usageArgs(cobra.NoArgs),
		Run: func(cmd *cobra.Command, _ []string) {
			if plain {
				printPlainVersion(cmd.OutOrStdout())
			} else {
				printPrettyVersion(cmd.OutOrStdout())
			}
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "Plain output without formatting")
	return cmd
}

// printPlainVersion prints a simple version output for scripting
func printPlainVersion(w io.Writer) {
	fmt.Fprintf(w, "claude-notify %s\n", build.Version)
	fmt.Fprintf(w, "commit: %s\n", build.Commit)
	fmt.Fprintf(w, "built: %s\n", build.BuildDate)
	fmt.Fprintf(w, "go: %s\n", runtime.Version())
	fmt.Fprintf(w, "platform: %s\n", build.Platform())
}

func printPrettyVersion(w io.Writer) {
	info := []struct {
		label string
		value string
	}{
		{"Version", build.Version},
		{"Commit", build.ShortCommit()},
		{"Built", build.BuildDate},
		{"Go", runtime.Version()},
		{"Platform", build.Platform()},
	}

	width := min(terminalWidth(w), 60)
	fmt.Fprintln(w)
	fmt.Fprintln(w, cyan("claude-notify"), dim("desktop notifications for Claude Code"))
	fmt.Fprintln(w, dim(strings.Repeat("─", width)))
	for _, item := range info {
		fmt.Fprintf(w, "  %s  %s\n", yellow(fmt.Sprintf("%-10s", item.label)), item.value)
	}
	fmt.Fprintln(w, dim(strings.Repeat("─", width)))
	fmt.Fprintln(w, dim(SourceURL))
	fmt.Fprintln(w)
}
