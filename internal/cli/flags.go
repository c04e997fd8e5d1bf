package cli

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thruflo/sortvis/internal/config"
	"github.com/thruflo/sortvis/internal/logging"
)

// configFlags holds command-line overrides for .sortvis/config.yaml.
type configFlags struct {
	elements      int
	speed         int
	algorithm     string
	resumable     []string
	sound         bool
	frameInterval time.Duration
	seed          uint64
	logLevel      string

	// interactive is set when the display flags were registered too.
	interactive bool
}

func (f *configFlags) registerCommon(fs *pflag.FlagSet) {
	fs.IntVarP(&f.elements, "elements", "n", config.DefaultElements, fmt.Sprintf("number of elements, one of %v", config.SizeTable))
	fs.Uint64Var(&f.seed, "seed", 0, "fixed shuffle seed (0 picks one from the clock)")
	fs.StringVar(&f.logLevel, "log-level", config.DefaultLogLevel, "debug, info, warn or error")
}

func (f *configFlags) registerInteractive(fs *pflag.FlagSet) {
	f.registerCommon(fs)
	f.interactive = true
	fs.StringVarP(&f.algorithm, "algorithm", "a", config.DefaultAlgorithm, "initial algorithm")
	fs.IntVarP(&f.speed, "speed", "s", 3, "initial speed level (0-5)")
	fs.StringSliceVar(&f.resumable, "resumable", nil, "algorithms that resume after a pause, or 'all'")
	fs.BoolVar(&f.sound, "sound", false, "ring the terminal bell on each redraw")
	fs.DurationVar(&f.frameInterval, "frame-interval", config.DefaultFrameInterval, "minimum pause after each redraw")
}

// overrides returns the flags the user actually set.
func (f *configFlags) overrides(fs *pflag.FlagSet) config.Overrides {
	var o config.Overrides
	if fs.Changed("elements") {
		o.Elements = &f.elements
	}
	if fs.Changed("seed") {
		o.Seed = &f.seed
	}
	if fs.Changed("log-level") {
		o.LogLevel = &f.logLevel
	}
	if !f.interactive {
		return o
	}
	if fs.Changed("speed") {
		o.Speed = &f.speed
	}
	if fs.Changed("algorithm") {
		o.Algorithm = &f.algorithm
	}
	if fs.Changed("resumable") {
		o.Resumable = &f.resumable
	}
	if fs.Changed("sound") {
		o.Sound = &f.sound
	}
	if fs.Changed("frame-interval") {
		o.FrameInterval = &f.frameInterval
	}
	return o
}

// loadConfig reads the config under basePath and applies the command's
// flags on top.
func loadConfig(cmd *cobra.Command, basePath string, f *configFlags) (*config.Config, error) {
	cfg, err := config.LoadConfig(basePath)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyOverrides(cfg, f.overrides(cmd.Flags())); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openLogFile points the default logger at .sortvis/sortvis.log. The
// returned func closes the file and sends the default logger back to stderr.
func openLogFile(basePath string, level logging.Level) (func() error, error) {
	path := config.LogPath(basePath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logging.SetLevel(level)
	logging.SetOutput(log.New(f, "", log.LstdFlags|log.Lmicroseconds))
	return func() error {
		logging.SetOutput(log.New(os.Stderr, "", log.LstdFlags))
		return f.Close()
	}, nil
}
