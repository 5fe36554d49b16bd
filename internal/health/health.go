// Package health runs the checks behind `claude-notify doctor`: is the
// configuration valid, can each notifier be found, is the icon in place and
// are the hooks registered with Claude Code.
package health

import (
	"fmt"

	"github.com/ariel-frischer/claude-notify/internal/claude"
	"github.com/ariel-frischer/claude-notify/internal/config"
	"github.com/ariel-frischer/claude-notify/internal/notify"
)

// CheckResult represents the result of a single health check
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
	// Warning marks a passed check whose finding degrades notifications
	// without breaking them.
	Warning bool
}

// HealthReport contains all health check results
type HealthReport struct {
	Checks []CheckResult
	Passed bool
}

// Options carries what the checks inspect.
type Options struct {
	// Config is the configuration to check. It must not be nil; pass
	// config.Default() when loading failed.
	Config *config.Configuration
	// ConfigErr is the error returned by config.Load, if any.
	ConfigErr error
	// Senders defaults to the senders built from Config.
	Senders []notify.Sender
	// SettingsPath is the Claude settings file to inspect. Empty skips the check.
	SettingsPath string
	// Binary is the claude-notify executable the hooks should point at.
	Binary string
}

// RunHealthChecks runs all health checks and returns a report
func RunHealthChecks(opts Options) *HealthReport {
	report := &HealthReport{
		Checks: make([]CheckResult, 0),
		Passed: true,
	}
	add := func(c CheckResult) {
		report.Checks = append(report.Checks, c)
		if !c.Passed {
			report.Passed = false
		}
	}

	add(CheckConfig(opts.Config, opts.ConfigErr))

	senders := opts.Senders
	if senders == nil {
		senders = notify.NewSenders(opts.Config.Notify(), notify.ExecLauncher{})
	}
	for _, s := range senders {
		add(CheckSender(s))
	}

	add(CheckIcon(opts.Config.IconPath))

	if opts.SettingsPath != "" {
		add(CheckSettings(opts.SettingsPath, opts.Binary))
	}

	return report
}

// CheckConfig reports whether the configuration loaded cleanly
func CheckConfig(cfg *config.Configuration, loadErr error) CheckResult {
	if loadErr != nil {
		return CheckResult{
			Name:    "Configuration",
			Passed:  false,
			Message: fmt.Sprintf("%v (hooks fall back to defaults)", loadErr),
		}
	}
	if !notify.ValidBackend(cfg.Backend) {
		return CheckResult{
			Name:    "Configuration",
			Passed:  false,
			Message: fmt.Sprintf("unknown backend %q (want native, rich or system)", cfg.Backend),
		}
	}
	msg := fmt.Sprintf("backend %s, defaults only", cfg.Backend)
	if n := len(cfg.Sources); n > 0 {
		msg = fmt.Sprintf("backend %s, from %s", cfg.Backend, cfg.Sources[n-1])
	}
	return CheckResult{Name: "Configuration", Passed: true, Message: msg}
}

// CheckSender checks if a notifier executable can be found
func CheckSender(s notify.Sender) CheckResult {
	name := "Notifier " + s.Name()
	if !s.Available() {
		return CheckResult{
			Name:    name,
			Passed:  false,
			Message: s.Name() + " not found",
		}
	}
	return CheckResult{
		Name:    name,
		Passed:  true,
		Message: s.Name() + " found",
	}
}

// CheckIcon checks the notification icon. A missing icon is only a warning.
func CheckIcon(path string) CheckResult {
	if notify.ResolveIcon(path) == "" {
		return CheckResult{
			Name:    "Icon",
			Passed:  true,
			Warning: true,
			Message: fmt.Sprintf("%s not found, notifications are sent without an icon", path),
		}
	}
	return CheckResult{Name: "Icon", Passed: true, Message: path}
}

// CheckSettings checks that the hooks are registered in a Claude settings file
func CheckSettings(settingsPath, binary string) CheckResult {
	settings, err := claude.Load(settingsPath)
	if err != nil {
		return CheckResult{Name: "Claude hooks", Passed: false, Message: err.Error()}
	}

	result := settings.Check(binary)
	return CheckResult{
		Name:    "Claude hooks",
		Passed:  true,
		Warning: result.Status != claude.StatusConfigured,
		Message: result.Message,
	}
}

// FormatReport formats the health report for plain console output
func FormatReport(report *HealthReport) string {
	var output string

	for _, check := range report.Checks {
		switch {
		case !check.Passed:
			output += fmt.Sprintf("✗ %s: %s\n", check.Name, check.Message)
		case check.Warning:
			output += fmt.Sprintf("! %s: %s\n", check.Name, check.Message)
		default:
			output += fmt.Sprintf("✓ %s: %s\n", check.Name, check.Message)
		}
	}

	return output
}
