package config

import "github.com/ariel-frischer/claude-notify/internal/notify"

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	n := notify.DefaultConfig()
	return map[string]interface{}{
		"backend":               string(n.Backend),
		"icon_path":             n.IconPath,
		"notifier_path":         n.NotifierPath,
		"terminal_notifier_cmd": n.TerminalNotifierCmd,
		"activate_bundle":       n.ActivateBundle,
		"companion_cmd":         n.CompanionCmd,
		"companion_enabled":     n.CompanionEnabled,
		"log_file":              "",
		"log_level":             "info",
	}
}
