package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/thruflo/sortvis/internal/engine"
	"github.com/thruflo/sortvis/internal/logging"
	"gopkg.in/yaml.v3"
)

// Dir is the per-project directory holding config and logs.
const Dir = ".sortvis"

// Default values for Config.
const (
	DefaultElements      = 100
	DefaultAlgorithm     = "bubble"
	DefaultFrameInterval = 16 * time.Millisecond
	DefaultLogLevel      = "warn"
)

// SizeTable lists the element counts a user may choose.
var SizeTable = []int{10, 20, 50, 100, 200, 500, 1000}

// NextSize returns the size after n in SizeTable, wrapping to the smallest.
// Sizes not in the table move to the smallest entry above them.
func NextSize(n int) int {
	for _, s := range SizeTable {
		if s > n {
			return s
		}
	}
	return SizeTable[0]
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Elements:      DefaultElements,
		Speed:         engine.DefaultSpeedLevel,
		Algorithm:     DefaultAlgorithm,
		Resumable:     kindNames(engine.DefaultPolicy().Kinds()),
		FrameInterval: DefaultFrameInterval.String(),
		LogLevel:      DefaultLogLevel,
	}
}

func kindNames(kinds []engine.Kind) []string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// Path returns the config file location under basePath.
func Path(basePath string) string {
	return filepath.Join(basePath, Dir, "config.yaml")
}

// LogPath returns the run log location under basePath.
func LogPath(basePath string) string {
	return filepath.Join(basePath, Dir, "sortvis.log")
}

// LoadConfig reads and parses .sortvis/config.yaml from basePath.
// A missing file yields the defaults; missing fields keep their defaults.
func LoadConfig(basePath string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path(basePath))
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field, returning the first ValidationError found.
func Validate(cfg *Config) error {
	if !slices.Contains(SizeTable, cfg.Elements) {
		return ValidationError{Field: "elements", Message: fmt.Sprintf("must be one of %v", SizeTable)}
	}
	if cfg.Speed < 0 || cfg.Speed >= len(engine.SpeedTable) {
		return ValidationError{Field: "speed", Message: fmt.Sprintf("must be between 0 and %d", len(engine.SpeedTable)-1)}
	}
	if _, err := engine.ParseKind(cfg.Algorithm); err != nil {
		return ValidationError{Field: "algorithm", Message: err.Error()}
	}
	for _, name := range cfg.Resumable {
		if _, err := engine.ParseKind(name); err != nil {
			return ValidationError{Field: "resumable", Message: err.Error()}
		}
	}
	d, err := time.ParseDuration(cfg.FrameInterval)
	if err != nil {
		return ValidationError{Field: "frame_interval", Message: "must be a duration such as 16ms"}
	}
	if d < 0 {
		return ValidationError{Field: "frame_interval", Message: "must not be negative"}
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return ValidationError{Field: "log_level", Message: "must be one of debug, info, warn, error"}
	}
	return nil
}

// ApplyOverrides copies every set override into cfg and validates the result.
func ApplyOverrides(cfg *Config, o Overrides) error {
	if o.Elements != nil {
		cfg.Elements = *o.Elements
	}
	if o.Speed != nil {
		cfg.Speed = *o.Speed
	}
	if o.Algorithm != nil {
		cfg.Algorithm = *o.Algorithm
	}
	if o.Resumable != nil {
		cfg.Resumable = *o.Resumable
		if len(cfg.Resumable) == 1 && strings.EqualFold(cfg.Resumable[0], "all") {
			cfg.Resumable = kindNames(engine.Kinds)
		}
	}
	if o.Sound != nil {
		cfg.Sound = *o.Sound
	}
	if o.FrameInterval != nil {
		cfg.FrameInterval = o.FrameInterval.String()
	}
	if o.Seed != nil {
		cfg.Seed = *o.Seed
	}
	if o.LogLevel != nil {
		cfg.LogLevel = *o.LogLevel
	}
	return Validate(cfg)
}

// WriteDefault creates .sortvis/config.yaml under basePath with commented
// defaults. An existing file is left alone unless force is set.
func WriteDefault(basePath string, force bool) (bool, error) {
	path := Path(basePath)
	if _, err := os.Stat(path); err == nil && !force {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create %s: %w", Dir, err)
	}
	if err := os.WriteFile(path, []byte(defaultFile), 0o644); err != nil {
		return false, fmt.Errorf("failed to write config file: %w", err)
	}
	ignore := filepath.Join(filepath.Dir(path), ".gitignore")
	if err := os.WriteFile(ignore, []byte("sortvis.log\n"), 0o644); err != nil {
		return false, fmt.Errorf("failed to write .gitignore: %w", err)
	}
	return true, nil
}

const defaultFile = `# sortvis configuration

# Number of bars: one of 10, 20, 50, 100, 200, 500, 1000
elements: 100

# Mutations between redraws: 0=1, 1=5, 2=10, 3=20, 4=50, 5=100
speed: 3

# bubble, quick, cocktail, shell, heap, merge, selection, insertion, gnome
algorithm: bubble

# Algorithms that resume where they stopped after a pause.
# Others need a fresh shuffle.
resumable:
  - bubble
  - cocktail

# Ring the terminal bell on each redraw
sound: false

# Minimum pause after each redraw
frame_interval: 16ms

# Fixed shuffle seed; 0 picks a new seed from the clock every shuffle
seed: 0

# debug, info, warn, error (written to .sortvis/sortvis.log)
log_level: warn
`
