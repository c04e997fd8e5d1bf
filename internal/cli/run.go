package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thruflo/sortvis/internal/controller"
	"github.com/thruflo/sortvis/internal/logging"
	"github.com/thruflo/sortvis/internal/tui"
)

var runFlags configFlags

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive visualizer",
	Long: `Opens a full-screen view of the sequence as bars and waits for keys.

Keys:
  b q c e h m l i g   select bubble, quick, cocktail, shell, heap, merge,
                      selection, insertion or gnome (see 'sortvis algorithms')
  enter / space       start; again while running to fast-forward
  p                   pause
  s                   shuffle
  r                   cycle the number of elements (when idle)
  up / down           faster / slower redraws
  x                   toggle sound
  esc / ctrl-c        quit

Running sortvis with no subcommand does the same.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runFlags.registerInteractive(runCmd.Flags())
	rootCmd.AddCommand(runCmd)

	// Bare `sortvis` opens the visualizer with the same flags.
	runFlags.registerInteractive(rootCmd.Flags())
	rootCmd.RunE = runRun
	rootCmd.Args = cobra.NoArgs
}

func runRun(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	cfg, err := loadConfig(cmd, cwd, &runFlags)
	if err != nil {
		return err
	}

	closeLog, err := openLogFile(cwd, cfg.Level())
	if err != nil {
		return err
	}
	defer closeLog()

	app, err := tui.New(controller.Options{
		Elements:   cfg.Elements,
		Algorithm:  cfg.Kind(),
		SpeedLevel: cfg.Speed,
		Policy:     cfg.Policy(),
		Seed:       cfg.Seed,
	}, tui.Options{
		Out:           cmd.OutOrStdout(),
		Sound:         cfg.Sound,
		FrameInterval: cfg.Frame(),
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info("session started", "elements", cfg.Elements, "algorithm", cfg.Kind())
	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error("session failed", "error", err)
		return err
	}
	logging.Info("session ended")
	return nil
}
