package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/ariel-frischer/claude-notify/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateJSONSyntax(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		content  string
		missing  bool
		wantErr  bool
		wantLine int
	}{
		"valid object":   {content: `{"backend": "rich"}`},
		"empty file":     {content: ""},
		"whitespace":     {content: " \n\t"},
		"missing file":   {missing: true},
		"syntax error":   {content: "{\n  \"backend\": ,\n}", wantErr: true, wantLine: 2},
		"truncated":      {content: `{"backend": "rich"`, wantErr: true},
		"top-level list": {content: `[1, 2]`, wantErr: true},
		"top-level text": {content: `"native"`, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "notify.json")
			if !tt.missing {
				testutil.WriteFile(t, path, tt.content)
			}

			err := ValidateJSONSyntax(path)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, path, verr.FilePath)
			if tt.wantLine > 0 {
				assert.Equal(t, tt.wantLine, verr.Line)
				assert.Contains(t, err.Error(), path+":2:")
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  ValidationError
		want string
	}{
		"with position": {
			err:  ValidationError{FilePath: "a.json", Line: 3, Column: 7, Message: "bad"},
			want: "a.json:3:7: bad",
		},
		"without position": {
			err:  ValidationError{FilePath: "a.json", Message: "permission denied"},
			want: "a.json: permission denied",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestLineColumn(t *testing.T) {
	t.Parallel()

	data := []byte("ab\ncde\nf")
	tests := map[string]struct {
		offset   int64
		wantLine int
		wantCol  int
	}{
		"start":        {offset: 0, wantLine: 1, wantCol: 1},
		"first line":   {offset: 2, wantLine: 1, wantCol: 3},
		"second line":  {offset: 4, wantLine: 2, wantCol: 2},
		"past the end": {offset: 100, wantLine: 3, wantCol: 2},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			line, col := lineColumn(data, tt.offset)
			assert.Equal(t, tt.wantLine, line)
			assert.Equal(t, tt.wantCol, col)
		})
	}
}
