package message

import (
	"path/filepath"

	"github.com/ariel-frischer/claude-notify/internal/hook"
	"github.com/ariel-frischer/claude-notify/internal/textutil"
)

// ToolKind groups tools by the tool_input field that best describes a call.
type ToolKind int

const (
	ToolOther ToolKind = iota
	ToolShell
	ToolFileMutation
	ToolWebFetch

	toolKindCount
)

const (
	// CommandLimit bounds the shell command shown in a permission message.
	CommandLimit = 100
	// URLLimit bounds the URL shown in a permission message.
	URLLimit = 80
)

var toolKinds = map[string]ToolKind{
	"Bash":         ToolShell,
	"Write":        ToolFileMutation,
	"Edit":         ToolFileMutation,
	"MultiEdit":    ToolFileMutation,
	"NotebookEdit": ToolFileMutation,
	"WebFetch":     ToolWebFetch,
}

// ToolKindOf classifies a tool_name.
func ToolKindOf(tool string) ToolKind {
	return toolKinds[tool]
}

// toolDetails extracts the detail shown after "<tool>: ". An empty result
// means the relevant field was absent and the generic form is used.
var toolDetails = [toolKindCount]func(hook.ToolInput) string{
	ToolOther: func(hook.ToolInput) string { return "" },
	ToolShell: func(in hook.ToolInput) string {
		return textutil.Truncate(in.String("command"), CommandLimit)
	},
	ToolFileMutation: func(in hook.ToolInput) string {
		p := in.String("file_path")
		if p == "" {
			return ""
		}
		return filepath.Base(p)
	},
	ToolWebFetch: func(in hook.ToolInput) string {
		return textutil.Truncate(in.String("url"), URLLimit)
	},
}

// PermissionMessage describes the tool call a permission request is for.
func PermissionMessage(tool string, input hook.ToolInput) string {
	if tool == "" {
		tool = "unknown tool"
	}
	if detail := toolDetails[ToolKindOf(tool)](input); detail != "" {
		return tool + ": " + detail
	}
	return "Permission needed for " + tool
}
