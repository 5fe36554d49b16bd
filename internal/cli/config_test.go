package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/ariel-frischer/claude-notify/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestConfigShowCmd(t *testing.T) {
	home := testutil.IsolateHome(t)
	configPath := testutil.WriteFile(t, filepath.Join(home, "project", "notify.json"),
		`{"backend":"rich","companion_enabled":true,"companion_cmd":"claude-companion"}`)
	t.Setenv("CLAUDE_NOTIFY_LOG_LEVEL", "debug")

	out, err := execute(t, testDeps(&recordingDispatcher{}, ""), "", "config", "show", "--config", configPath)
	require.NoError(t, err)

	assert.Contains(t, out, "# source: "+configPath)
	doc, _, _ := strings.Cut(out, "\n# ")
	assert.Equal(t, "rich", gjson.Get(doc, "backend").String())
	assert.True(t, gjson.Get(doc, "companion_enabled").Bool())
	assert.Equal(t, "debug", gjson.Get(doc, "log_level").String())
	assert.False(t, gjson.Get(doc, "Sources").Exists())
}

func TestConfigShowCmdDefaultsOnly(t *testing.T) {
	home := testutil.IsolateHome(t)

	out, err := execute(t, testDeps(&recordingDispatcher{}, ""), "",
		"config", "show", "--config", filepath.Join(home, "absent.json"))
	require.NoError(t, err)

	assert.Contains(t, out, `"backend": "native"`)
	assert.Contains(t, out, "# sources: defaults only")
}

func TestConfigShowCmdInvalidConfig(t *testing.T) {
	home := testutil.IsolateHome(t)
	configPath := testutil.WriteFile(t, filepath.Join(home, "notify.json"), `{"log_level":"loud"}`)

	_, err := execute(t, testDeps(&recordingDispatcher{}, ""), "", "config", "show", "--config", configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
	assert.Equal(t, ExitFailure, ExitCode(err))
}
