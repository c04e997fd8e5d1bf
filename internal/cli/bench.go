package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thruflo/sortvis/internal/config"
	"github.com/thruflo/sortvis/internal/controller"
	"github.com/thruflo/sortvis/internal/engine"
	"github.com/thruflo/sortvis/internal/logging"
	"k8s.io/utils/clock"
)

var (
	benchFlags     configFlags
	benchAlgorithm string
	benchSpeed     int
)

// benchClock times bench runs. Tests replace it.
var benchClock clock.PassiveClock = clock.RealClock{}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Sort without a display and print counters as JSON",
	Long: `Runs one or all algorithms on the same shuffle without drawing and prints
one JSON object per algorithm:

  {"run_id":"...","algorithm":"quick","elements":100,"seed":42,
   "swaps":312,"comparisons":640,"elapsed_ms":0.41,"sorted":true}

With --seed 0 a seed is chosen from the clock and reported, so any line can be
reproduced with --seed.`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	benchFlags.registerCommon(benchCmd.Flags())
	benchCmd.Flags().StringVarP(&benchAlgorithm, "algorithm", "a", "all", "algorithm to run, or 'all'")
	benchCmd.Flags().IntVarP(&benchSpeed, "speed", "s", len(engine.SpeedTable)-1, "speed level; sets how often the (empty) draw runs")
	rootCmd.AddCommand(benchCmd)
}

// BenchResult is one line of bench output.
type BenchResult struct {
	RunID       string      `json:"run_id"`
	Algorithm   engine.Kind `json:"algorithm"`
	Elements    int         `json:"elements"`
	Seed        uint64      `json:"seed"`
	Swaps       int         `json:"swaps"`
	Comparisons int         `json:"comparisons"`
	ElapsedMS   float64     `json:"elapsed_ms"`
	Sorted      bool        `json:"sorted"`
}

// benchHost never cancels and draws nothing.
type benchHost struct{}

func (benchHost) Cancelled() bool { return false }
func (benchHost) Draw()           {}

func runBench(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	cfg, err := loadConfig(cmd, cwd, &benchFlags)
	if err != nil {
		return err
	}

	kinds, err := benchKinds(benchAlgorithm)
	if err != nil {
		return err
	}
	if benchSpeed < 0 || benchSpeed >= len(engine.SpeedTable) {
		return config.ValidationError{
			Field:   "speed",
			Message: fmt.Sprintf("must be between 0 and %d", len(engine.SpeedTable)-1),
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(benchClock.Now().UnixNano())
	}

	logging.SetLevel(cfg.Level())

	enc := json.NewEncoder(cmd.OutOrStdout())
	for _, k := range kinds {
		result, err := benchOne(k, cfg, seed)
		if err != nil {
			return err
		}
		logging.Debug("bench finished", "run_id", result.RunID, "algorithm", k, "sorted", result.Sorted)
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
	return nil
}

func benchKinds(name string) ([]engine.Kind, error) {
	if name == "" || name == "all" {
		return engine.Kinds, nil
	}
	k, err := engine.ParseKind(name)
	if err != nil {
		return nil, config.ValidationError{Field: "algorithm", Message: err.Error()}
	}
	return []engine.Kind{k}, nil
}

func benchOne(k engine.Kind, cfg *config.Config, seed uint64) (BenchResult, error) {
	ctrl, err := controller.New(benchHost{}, controller.Options{
		Elements:   cfg.Elements,
		Algorithm:  k,
		SpeedLevel: benchSpeed,
		Seed:       seed,
		Clock:      benchClock,
	})
	if err != nil {
		return BenchResult{}, err
	}
	if err := ctrl.RequestShuffle(); err != nil {
		return BenchResult{}, err
	}
	state, err := ctrl.RequestStart()
	if err != nil {
		return BenchResult{}, fmt.Errorf("%s: %w", k, err)
	}

	snap := ctrl.Snapshot()
	return BenchResult{
		RunID:       snap.RunID,
		Algorithm:   k,
		Elements:    snap.Elements,
		Seed:        seed,
		Swaps:       snap.Telemetry.Swaps,
		Comparisons: snap.Telemetry.Comparisons,
		ElapsedMS:   float64(snap.Telemetry.Elapsed.Microseconds()) / 1000,
		Sorted:      state == controller.StateSorted && ctrl.Sequence().IsSorted(),
	}, nil
}
