package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/sortvis/internal/config"
	"github.com/thruflo/sortvis/internal/engine"
	"k8s.io/utils/clock"
	clocktesting "k8s.io/utils/clock/testing"
)

func decodeResults(t *testing.T, out string) []BenchResult {
	t.Helper()

	var results []BenchResult
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		var r BenchResult
		require.NoError(t, json.Unmarshal([]byte(line), &r), line)
		results = append(results, r)
	}
	return results
}

func useBenchClock(t *testing.T, c clock.PassiveClock) {
	t.Helper()
	prev := benchClock
	benchClock = c
	t.Cleanup(func() { benchClock = prev })
}

func TestBench_SingleAlgorithm(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := execute(t, "bench", "--algorithm", "quick", "--elements", "50", "--seed", "42")
	require.NoError(t, err)

	results := decodeResults(t, out)
	require.Len(t, results, 1)
	r := results[0]
	assert.Equal(t, engine.Quick, r.Algorithm)
	assert.Equal(t, 50, r.Elements)
	assert.Equal(t, uint64(42), r.Seed)
	assert.True(t, r.Sorted)
	assert.Positive(t, r.Swaps)
	assert.Positive(t, r.Comparisons)
	assert.NotEmpty(t, r.RunID)
	assert.GreaterOrEqual(t, r.ElapsedMS, 0.0)
}

func TestBench_AllAlgorithmsAreReproducible(t *testing.T) {
	t.Chdir(t.TempDir())

	first, err := execute(t, "bench", "--elements", "20", "--seed", "7")
	require.NoError(t, err)
	second, err := execute(t, "bench", "--elements", "20", "--seed", "7")
	require.NoError(t, err)

	a, b := decodeResults(t, first), decodeResults(t, second)
	require.Len(t, a, len(engine.Kinds))
	require.Len(t, b, len(engine.Kinds))

	for i, k := range engine.Kinds {
		assert.Equal(t, k, a[i].Algorithm)
		assert.True(t, a[i].Sorted, k.String())
		assert.Equal(t, a[i].Swaps, b[i].Swaps, k.String())
		assert.Equal(t, a[i].Comparisons, b[i].Comparisons, k.String())
		assert.NotEqual(t, a[i].RunID, b[i].RunID)
	}
}

func TestBench_ZeroSeedComesFromClock(t *testing.T) {
	t.Chdir(t.TempDir())
	useBenchClock(t, clocktesting.NewFakePassiveClock(time.Unix(0, 123456789)))

	out, err := execute(t, "bench", "--algorithm", "gnome", "--elements", "10")
	require.NoError(t, err)

	results := decodeResults(t, out)
	require.Len(t, results, 1)
	assert.Equal(t, uint64(123456789), results[0].Seed)
	assert.Zero(t, results[0].ElapsedMS, "a frozen clock measures nothing")
	assert.True(t, results[0].Sorted)
}

func TestBench_SpeedBounds(t *testing.T) {
	for _, level := range []int{0, len(engine.SpeedTable) - 1} {
		t.Run(fmt.Sprintf("level-%d", level), func(t *testing.T) {
			t.Chdir(t.TempDir())

			out, err := execute(t, "bench", "-a", "shell", "-n", "10", "--seed", "3", "--speed", fmt.Sprint(level))
			require.NoError(t, err)
			results := decodeResults(t, out)
			require.Len(t, results, 1)
			assert.True(t, results[0].Sorted)
		})
	}
}

func TestBench_UsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, config.Dir), 0o755))
	require.NoError(t, os.WriteFile(config.Path(dir), []byte("elements: 20\nseed: 5\n"), 0o644))

	out, err := execute(t, "bench", "-a", "heap")
	require.NoError(t, err)

	results := decodeResults(t, out)
	require.Len(t, results, 1)
	assert.Equal(t, 20, results[0].Elements)
	assert.Equal(t, uint64(5), results[0].Seed)
}

func TestBench_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown algorithm", []string{"bench", "--algorithm", "bogo"}},
		{"zero elements", []string{"bench", "--elements", "0"}},
		{"bad log level", []string{"bench", "--log-level", "loud"}},
		{"speed too high", []string{"bench", "--speed", "99"}},
		{"negative speed", []string{"bench", "--speed=-3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())

			out, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.True(t, config.IsValidationError(err), err.Error())
			assert.Empty(t, out, "nothing runs after a rejected flag")
		})
	}
}
