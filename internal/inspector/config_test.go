package inspector

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inspector.yaml")
	content := "tooltips: false\nlabel_width: 140\nrow_height: 30\ndebug: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{Tooltips: false, LabelWidth: 140, RowHeight: 30, Debug: true}, *cfg)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inspector.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"label_width": 90}`), 0644))
	t.Setenv("INSPECTOR_LABEL_WIDTH", "200")
	t.Setenv("INSPECTOR_TOOLTIPS", "false")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, float32(200), cfg.LabelWidth)
	assert.False(t, cfg.Tooltips)
	assert.Equal(t, float32(24), cfg.RowHeight)
}

func TestLoadConfigBadRowHeightFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inspector.yaml")
	require.NoError(t, os.WriteFile(path, []byte("row_height: 0\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, float32(24), cfg.RowHeight)
}

func TestLoadConfigInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inspector.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tooltips: [unterminated\n"), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}
