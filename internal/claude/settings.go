package claude

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ariel-frischer/claude-notify/internal/hook"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// SettingsStatus represents how far claude-notify is registered in a settings file.
type SettingsStatus int

const (
	// StatusConfigured indicates every hook entry is registered.
	StatusConfigured SettingsStatus = iota
	// StatusMissing indicates the settings file does not exist.
	StatusMissing
	// StatusPartial indicates some hook entries are registered.
	StatusPartial
	// StatusNotInstalled indicates the file exists without any claude-notify hook.
	StatusNotInstalled
)

// String returns a human-readable representation of the status.
func (s SettingsStatus) String() string {
	switch s {
	case StatusConfigured:
		return "Configured"
	case StatusMissing:
		return "Missing"
	case StatusPartial:
		return "Partial"
	case StatusNotInstalled:
		return "NotInstalled"
	default:
		return "Unknown"
	}
}

// SettingsCheckResult contains the result of inspecting a settings file.
type SettingsCheckResult struct {
	Status   SettingsStatus
	Message  string
	FilePath string
}

// SettingsDir is the directory containing Claude settings.
const SettingsDir = ".claude"

// SettingsFileName is the name of the user-level Claude settings file.
const SettingsFileName = "settings.json"

// HookEntry is one hook registration: the host event, an optional matcher
// on notification_type, and the claude-notify subcommand that handles it.
type HookEntry struct {
	Event   string
	Matcher string
	Route   hook.Route
}

// HookEntries lists the registrations Install adds, in write order.
var HookEntries = []HookEntry{
	{Event: "Stop", Route: hook.RouteStop},
	{Event: "Notification", Matcher: "idle_prompt|permission_prompt", Route: hook.RouteNotification},
	{Event: "PermissionRequest", Route: hook.RoutePermission},
}

// HookCommand returns the shell command registered for route.
func HookCommand(binary string, route hook.Route) string {
	return `"` + binary + `" ` + string(route)
}

type hookGroup struct {
	Matcher string        `json:"matcher,omitempty"`
	Hooks   []hookCommand `json:"hooks"`
}

type hookCommand struct {
	Type    string `json:"type"`
	Command string `json:"command"`
}

// Settings is a Claude settings file held as raw JSON.
type Settings struct {
	data     []byte
	filePath string
}

// DefaultSettingsPath returns ~/.claude/settings.json.
func DefaultSettingsPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(homeDir, SettingsDir, SettingsFileName), nil
}

// Load reads and parses the settings file at settingsPath.
// Returns a Settings instance even if the file doesn't exist (with empty data).
// Returns an error only for actual failures like permission errors or malformed JSON.
func Load(settingsPath string) (*Settings, error) {
	s := &Settings{data: []byte("{}"), filePath: settingsPath}

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading settings file %s: %w", settingsPath, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return s, nil
	}

	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsObject() {
		return nil, fmt.Errorf("parsing settings file %s: not a JSON object", settingsPath)
	}

	s.data = data
	return s, nil
}

// FilePath returns the path to the settings file.
func (s *Settings) FilePath() string {
	return s.filePath
}

// Exists returns true if the settings file exists on disk.
func (s *Settings) Exists() bool {
	_, err := os.Stat(s.filePath)
	return err == nil
}

// Bytes returns the settings as indented JSON with a trailing newline.
func (s *Settings) Bytes() []byte {
	return pretty.PrettyOptions(s.data, &pretty.Options{Width: 80, Indent: "  "})
}

// HasHook reports whether entry is registered for binary.
func (s *Settings) HasHook(binary string, entry HookEntry) bool {
	want := normalizeCommand(HookCommand(binary, entry.Route))
	found := false
	eventPath(s.data, entry.Event).ForEach(func(_, group gjson.Result) bool {
		group.Get("hooks").ForEach(func(_, h gjson.Result) bool {
			found = normalizeCommand(h.Get("command").String()) == want
			return !found
		})
		return !found
	})
	return found
}

// AddHooks registers every missing entry for binary and returns the events
// that were added. Calling it again is a no-op.
func (s *Settings) AddHooks(binary string) ([]string, error) {
	var added []string
	for _, entry := range HookEntries {
		if s.HasHook(binary, entry) {
			continue
		}

		group, err := json.Marshal(hookGroup{
			Matcher: entry.Matcher,
			Hooks:   []hookCommand{{Type: "command", Command: HookCommand(binary, entry.Route)}},
		})
		if err != nil {
			return added, fmt.Errorf("encoding %s hook: %w", entry.Event, err)
		}

		path := "hooks." + entry.Event
		existing := gjson.GetBytes(s.data, path)
		switch {
		case !existing.Exists():
			s.data, err = sjson.SetRawBytes(s.data, path, append(append([]byte{'['}, group...), ']'))
		case existing.IsArray():
			s.data, err = sjson.SetRawBytes(s.data, path+".-1", group)
		default:
			return added, fmt.Errorf("hooks.%s in %s is not an array", entry.Event, s.filePath)
		}
		if err != nil {
			return added, fmt.Errorf("adding %s hook: %w", entry.Event, err)
		}
		added = append(added, entry.Event)
	}
	return added, nil
}

// RemoveHooks deletes every hook command registered for binary. Groups left
// without hooks, events left without groups and an empty hooks object are
// removed too. Other hooks are untouched. Returns the number of commands
// removed.
func (s *Settings) RemoveHooks(binary string) (int, error) {
	ours := make(map[string]bool, len(HookEntries))
	for _, entry := range HookEntries {
		ours[normalizeCommand(HookCommand(binary, entry.Route))] = true
	}

	removed := 0
	for _, entry := range HookEntries {
		groups := eventPath(s.data, entry.Event).Array()
		for gi := len(groups) - 1; gi >= 0; gi-- {
			hooks := groups[gi].Get("hooks").Array()
			kept := len(hooks)
			for hi := len(hooks) - 1; hi >= 0; hi-- {
				if !ours[normalizeCommand(hooks[hi].Get("command").String())] {
					continue
				}
				var err error
				s.data, err = sjson.DeleteBytes(s.data, fmt.Sprintf("hooks.%s.%d.hooks.%d", entry.Event, gi, hi))
				if err != nil {
					return removed, fmt.Errorf("removing %s hook: %w", entry.Event, err)
				}
				removed++
				kept--
			}
			if kept == 0 && len(hooks) > 0 {
				var err error
				s.data, err = sjson.DeleteBytes(s.data, fmt.Sprintf("hooks.%s.%d", entry.Event, gi))
				if err != nil {
					return removed, fmt.Errorf("removing %s group: %w", entry.Event, err)
				}
			}
		}
		if ev := eventPath(s.data, entry.Event); ev.IsArray() && len(ev.Array()) == 0 {
			s.data, _ = sjson.DeleteBytes(s.data, "hooks."+entry.Event)
		}
	}

	if h := gjson.GetBytes(s.data, "hooks"); h.IsObject() && len(h.Map()) == 0 {
		s.data, _ = sjson.DeleteBytes(s.data, "hooks")
	}
	return removed, nil
}

// Check reports how many of the hook entries are registered for binary.
func (s *Settings) Check(binary string) SettingsCheckResult {
	if !s.Exists() {
		return SettingsCheckResult{
			Status:  StatusMissing,
			Message: fmt.Sprintf("%s not found (run 'claude-notify install')", s.filePath),
		}
	}

	var missing []string
	for _, entry := range HookEntries {
		if !s.HasHook(binary, entry) {
			missing = append(missing, entry.Event)
		}
	}

	switch len(missing) {
	case 0:
		return SettingsCheckResult{
			Status:   StatusConfigured,
			Message:  "all hooks registered",
			FilePath: s.filePath,
		}
	case len(HookEntries):
		return SettingsCheckResult{
			Status:   StatusNotInstalled,
			Message:  "no claude-notify hooks registered (run 'claude-notify install')",
			FilePath: s.filePath,
		}
	default:
		return SettingsCheckResult{
			Status:   StatusPartial,
			Message:  "missing hooks: " + strings.Join(missing, ", "),
			FilePath: s.filePath,
		}
	}
}

// Save writes the settings to disk using atomic write (temp file + rename).
// Creates the parent directory if it doesn't exist.
func (s *Settings) Save() error {
	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return atomicWrite(s.filePath, s.Bytes())
}

func eventPath(data []byte, event string) gjson.Result {
	return gjson.GetBytes(data, "hooks."+event)
}

// normalizeCommand strips quotes and collapses whitespace so that
// equivalent command lines compare equal.
func normalizeCommand(cmd string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(cmd, `"`, "")), " ")
}

// atomicWrite writes data to a file atomically using temp file + rename.
func atomicWrite(filePath string, data []byte) error {
	dir := filepath.Dir(filePath)
	tmpFile, err := os.CreateTemp(dir, ".settings-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on any error
	defer func() {
		if tmpPath != "" {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, filePath); err != nil {
		return fmt.Errorf("renaming temp file to %s: %w", filePath, err)
	}

	tmpPath = ""
	return nil
}
