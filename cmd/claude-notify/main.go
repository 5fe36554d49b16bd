// claude-notify - desktop notifications for Claude Code hooks
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/claude-notify

package main

import (
	"os"

	"github.com/ariel-frischer/claude-notify/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
