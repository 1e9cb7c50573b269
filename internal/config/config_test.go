package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()

	assert.Equal(t, "typescript", cfg.Generator.Target)
	assert.True(t, cfg.Generator.Banner)
	assert.Contains(t, cfg.Analyze.Include, "**/*.abap")
	assert.Contains(t, cfg.Analyze.Ignore, ".git/**")
}

func TestLoadWithoutConfigFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default().Generator, cfg.Generator)
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := `generator:
  target: python
  banner: false
analyze:
  include:
    - "modules/**/*.abap"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".abaplens.yml"), []byte(content), 0o644))
	t.Chdir(dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "python", cfg.Generator.Target)
	assert.False(t, cfg.Generator.Banner)
	assert.Equal(t, []string{"modules/**/*.abap"}, cfg.Analyze.Include)
}
