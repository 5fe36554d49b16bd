package message

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/ariel-frischer/claude-notify/internal/hook"
	"github.com/stretchr/testify/assert"
)

func TestToolKindOf(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		tool string
		want ToolKind
	}{
		"bash":          {tool: "Bash", want: ToolShell},
		"write":         {tool: "Write", want: ToolFileMutation},
		"edit":          {tool: "Edit", want: ToolFileMutation},
		"multi edit":    {tool: "MultiEdit", want: ToolFileMutation},
		"notebook edit": {tool: "NotebookEdit", want: ToolFileMutation},
		"web fetch":     {tool: "WebFetch", want: ToolWebFetch},
		"read":          {tool: "Read", want: ToolOther},
		"lowercase":     {tool: "bash", want: ToolOther},
		"empty":         {tool: "", want: ToolOther},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ToolKindOf(tt.tool))
		})
	}
}

func TestPermissionMessage(t *testing.T) {
	t.Parallel()

	longURL := "https://example.com/" + strings.Repeat("a", 100)

	tests := map[string]struct {
		tool  string
		input string
		want  string
	}{
		"shell command": {
			tool:  "Bash",
			input: `{"command":"rm -rf /tmp/x"}`,
			want:  "Bash: rm -rf /tmp/x",
		},
		"shell without command": {
			tool:  "Bash",
			input: `{"description":"list"}`,
			want:  "Permission needed for Bash",
		},
		"shell with empty command": {
			tool:  "Bash",
			input: `{"command":""}`,
			want:  "Permission needed for Bash",
		},
		"shell with non-string command": {
			tool:  "Bash",
			input: `{"command":["ls"]}`,
			want:  "Permission needed for Bash",
		},
		"write shows base name": {
			tool:  "Write",
			input: `{"file_path":"/home/u/project/src/main.go","content":"x"}`,
			want:  "Write: main.go",
		},
		"edit shows base name": {
			tool:  "Edit",
			input: `{"file_path":"internal/notify/sender.go"}`,
			want:  "Edit: sender.go",
		},
		"multi edit": {
			tool:  "MultiEdit",
			input: `{"file_path":"/a/b.txt"}`,
			want:  "MultiEdit: b.txt",
		},
		"edit without path": {
			tool:  "Edit",
			input: `{}`,
			want:  "Permission needed for Edit",
		},
		"web fetch": {
			tool:  "WebFetch",
			input: `{"url":"https://go.dev/doc"}`,
			want:  "WebFetch: https://go.dev/doc",
		},
		"web fetch long url": {
			tool:  "WebFetch",
			input: `{"url":"` + longURL + `"}`,
			want:  "WebFetch: " + longURL[:URLLimit],
		},
		"other tool": {
			tool:  "Read",
			input: `{"file_path":"/a/b.txt"}`,
			want:  "Permission needed for Read",
		},
		"missing tool name": {
			tool: "",
			want: "Permission needed for unknown tool",
		},
		"missing tool input": {
			tool: "Bash",
			want: "Permission needed for Bash",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var input hook.ToolInput
			if tt.input != "" {
				input = hook.ToolInput(tt.input)
			}
			assert.Equal(t, tt.want, PermissionMessage(tt.tool, input))
		})
	}
}

func TestPermissionMessage_CommandTruncation(t *testing.T) {
	t.Parallel()

	cmd := strings.Repeat("x", 150)
	got := PermissionMessage("Bash", hook.ToolInput(`{"command":"`+cmd+`"}`))

	detail := strings.TrimPrefix(got, "Bash: ")
	assert.Equal(t, CommandLimit, utf8.RuneCountInString(detail))
	assert.Equal(t, strings.Repeat("x", 100), detail)
	assert.NotContains(t, got, "…")
}

func TestPermissionMessage_MultibyteCommand(t *testing.T) {
	t.Parallel()

	cmd := strings.Repeat("é", 150)
	got := PermissionMessage("Bash", hook.ToolInput(`{"command":"`+cmd+`"}`))

	assert.Equal(t, "Bash: "+strings.Repeat("é", 100), got)
	assert.True(t, utf8.ValidString(got))
}
