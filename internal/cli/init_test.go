package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/sortvis/internal/config"
)

func TestInit_WritesDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	out, err := execute(t, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "config.yaml")

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), *cfg)

	ignore, err := os.ReadFile(filepath.Join(dir, config.Dir, ".gitignore"))
	require.NoError(t, err)
	assert.Contains(t, string(ignore), "sortvis.log")
}

func TestInit_RefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, config.Dir), 0o755))
	require.NoError(t, os.WriteFile(config.Path(dir), []byte("elements: 20\n"), 0o644))

	_, err := execute(t, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	data, err := os.ReadFile(config.Path(dir))
	require.NoError(t, err)
	assert.Equal(t, "elements: 20\n", string(data))

	_, err = execute(t, "init", "--force")
	require.NoError(t, err)

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultElements, cfg.Elements)
}
