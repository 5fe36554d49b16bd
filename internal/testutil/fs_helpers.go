// Package testutil provides test utilities and helpers for claude-notify tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// EnvPrefix is the prefix of claude-notify environment overrides.
const EnvPrefix = "CLAUDE_NOTIFY_"

// IsolateHome points HOME at a fresh temp directory and clears every
// CLAUDE_NOTIFY_* variable, so neither the user's ~/.claude files nor their
// environment reach the test. Callers cannot use t.Parallel().
func IsolateHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	for _, kv := range os.Environ() {
		name, _, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		// t.Setenv registers the restore; the unset makes the variable absent
		// rather than empty.
		t.Setenv(name, "")
		os.Unsetenv(name)
	}

	return home
}

// CreateTempTranscript writes a session transcript in JSON Lines form to
// dir/session.jsonl and returns its path. By default it holds one user
// prompt followed by one assistant text reply.
func CreateTempTranscript(t *testing.T, dir string, opts ...TranscriptOption) string {
	t.Helper()

	config := &transcriptConfig{
		userText:      "Run the tests",
		assistantText: "All tests pass",
	}
	for _, opt := range opts {
		opt(config)
	}

	lines := []string{
		record(t, "user", config.userText),
		record(t, "assistant", []map[string]any{{"type": "text", "text": config.assistantText}}),
	}
	if config.toolUseTail {
		lines = append(lines, record(t, "assistant", []map[string]any{
			{"type": "tool_use", "id": "toolu_01", "name": "Bash", "input": map[string]any{"command": "go test ./..."}},
		}))
	}
	lines = append(lines, config.extra...)

	path := filepath.Join(dir, "session.jsonl")
	WriteFile(t, path, strings.Join(lines, "\n")+"\n")
	return path
}

func record(t *testing.T, role string, content any) string {
	t.Helper()

	data, err := json.Marshal(map[string]any{
		"type":    role,
		"message": map[string]any{"role": role, "content": content},
	})
	if err != nil {
		t.Fatalf("failed to encode %s record: %v", role, err)
	}
	return string(data)
}

// transcriptConfig holds configuration for CreateTempTranscript
type transcriptConfig struct {
	userText      string
	assistantText string
	toolUseTail   bool
	extra         []string
}

// TranscriptOption is a functional option for CreateTempTranscript
type TranscriptOption func(*transcriptConfig)

// WithAssistantText sets the text of the assistant reply
func WithAssistantText(text string) TranscriptOption {
	return func(c *transcriptConfig) {
		c.assistantText = text
	}
}

// WithToolUseTail appends an assistant record that holds only a tool call
func WithToolUseTail() TranscriptOption {
	return func(c *transcriptConfig) {
		c.toolUseTail = true
	}
}

// WithRawLines appends lines verbatim after the generated records
func WithRawLines(lines ...string) TranscriptOption {
	return func(c *transcriptConfig) {
		c.extra = append(c.extra, lines...)
	}
}

// WriteFile writes content to a file, creating parent directories if needed.
// Returns path.
func WriteFile(t *testing.T, path, content string) string {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// WriteExecutable writes a shell script that exits 0, standing in for a
// notifier binary.
func WriteExecutable(t *testing.T, path string) string {
	t.Helper()

	WriteFile(t, path, "#!/bin/sh\nexit 0\n")
	if err := os.Chmod(path, 0o755); err != nil {
		t.Fatalf("failed to chmod %s: %v", path, err)
	}
	return path
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadFile reads file content, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}

	return string(content)
}
