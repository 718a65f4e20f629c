package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "slides.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultMinDisplay, cfg.MinDisplay)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `
name: talk
width: 100
boxing: false
strikethrough: strike
min_display: 250ms
shell: zsh
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "talk", cfg.Name)
	assert.Equal(t, 100, cfg.Width)
	require.NotNil(t, cfg.Boxing)
	assert.False(t, *cfg.Boxing)
	require.NotNil(t, cfg.Hyperlinks)
	assert.True(t, *cfg.Hyperlinks, "unset fields keep their defaults")
	assert.Equal(t, "strike", cfg.Strikethrough)
	assert.Equal(t, 250*time.Millisecond, cfg.MinDisplay)
	assert.Equal(t, "zsh", cfg.Shell)
	assert.Equal(t, "python3", cfg.Python)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Bad yaml", "width: [1"},
		{"Bad strikethrough", "strikethrough: wavy"},
		{"Negative width", "width: -1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}
