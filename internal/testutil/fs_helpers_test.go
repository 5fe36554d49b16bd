package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestIsolateHome(t *testing.T) {
	t.Setenv("CLAUDE_NOTIFY_BACKEND", "rich")

	home := IsolateHome(t)

	assert.Equal(t, home, os.Getenv("HOME"))
	_, set := os.LookupEnv("CLAUDE_NOTIFY_BACKEND")
	assert.False(t, set)
}

func TestCreateTempTranscript(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		opts      []TranscriptOption
		wantLines int
		wantLast  string
	}{
		"defaults": {
			wantLines: 2,
			wantLast:  "All tests pass",
		},
		"custom reply": {
			opts:      []TranscriptOption{WithAssistantText("Refactor done")},
			wantLines: 2,
			wantLast:  "Refactor done",
		},
		"tool use tail and raw lines": {
			opts:      []TranscriptOption{WithToolUseTail(), WithRawLines("not json")},
			wantLines: 4,
			wantLast:  "All tests pass",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := CreateTempTranscript(t, t.TempDir(), tc.opts...)
			lines := strings.Split(strings.TrimSuffix(ReadFile(t, path), "\n"), "\n")
			require.Len(t, lines, tc.wantLines)

			assert.Equal(t, "user", gjson.Get(lines[0], "type").String())
			assert.Equal(t, tc.wantLast, gjson.Get(lines[1], "message.content.0.text").String())
		})
	}
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	tests := map[string]struct {
		path    string
		content string
	}{
		"simple file": {
			path:    filepath.Join(tmpDir, "test.txt"),
			content: "test content",
		},
		"nested file": {
			path:    filepath.Join(tmpDir, "nested", "dir", "test.txt"),
			content: "nested content",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := WriteFile(t, tc.path, tc.content)

			assert.Equal(t, tc.path, got)
			assert.True(t, FileExists(tc.path))
			assert.Equal(t, tc.content, ReadFile(t, tc.path))
		})
	}
}

func TestWriteExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not enforced on windows")
	}
	t.Parallel()

	path := WriteExecutable(t, filepath.Join(t.TempDir(), "bin", "notifier"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode().Perm()&0o111)
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	existingFile := WriteFile(t, filepath.Join(tmpDir, "exists.txt"), "test")

	tests := map[string]struct {
		path string
		want bool
	}{
		"existing file": {
			path: existingFile,
			want: true,
		},
		"non-existing file": {
			path: filepath.Join(tmpDir, "nonexistent.txt"),
			want: false,
		},
		"existing directory": {
			path: tmpDir,
			want: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, FileExists(tc.path))
		})
	}
}
