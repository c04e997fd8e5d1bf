package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/sortvis/internal/config"
	"github.com/thruflo/sortvis/internal/engine"
)

func algorithmRows(t *testing.T, out string) map[string][]string {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(engine.Kinds)+1)
	assert.Equal(t, []string{"NAME", "TITLE", "KEY", "RESUMABLE"}, strings.Fields(lines[0]))

	rows := make(map[string][]string)
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		rows[fields[0]] = fields
	}
	return rows
}

func TestAlgorithms_DefaultPolicy(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := execute(t, "algorithms")
	require.NoError(t, err)

	rows := algorithmRows(t, out)
	// name, title words..., key, resumable
	assert.Equal(t, []string{"bubble", "Bubble", "Sort", "b", "yes"}, rows["bubble"])
	assert.Equal(t, []string{"cocktail", "Cocktail", "Sort", "c", "yes"}, rows["cocktail"])
	assert.Equal(t, []string{"quick", "Quick", "Sort", "q", "no"}, rows["quick"])
	assert.Equal(t, "e", rows["shell"][3])
}

func TestAlgorithms_ResumableOverride(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := execute(t, "algorithms", "--resumable", "all")
	require.NoError(t, err)

	for name, row := range algorithmRows(t, out) {
		assert.Equal(t, "yes", row[len(row)-1], name)
	}
}

func TestAlgorithms_ReadsConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, config.Dir), 0o755))
	require.NoError(t, os.WriteFile(config.Path(dir), []byte("resumable: [heap]\n"), 0o644))

	out, err := execute(t, "algorithms")
	require.NoError(t, err)

	rows := algorithmRows(t, out)
	assert.Equal(t, "yes", rows["heap"][4])
	assert.Equal(t, "no", rows["bubble"][4])
}
