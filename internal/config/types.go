package config

import (
	"time"

	"github.com/thruflo/sortvis/internal/engine"
	"github.com/thruflo/sortvis/internal/logging"
)

// Config represents the .sortvis/config.yaml file.
//
// Enumerated values are kept as strings so a bad value surfaces as a
// ValidationError naming the field rather than a YAML decode error. The typed
// accessors below assume the Config has passed Validate.
type Config struct {
	Elements      int      `yaml:"elements"`
	Speed         int      `yaml:"speed"`
	Algorithm     string   `yaml:"algorithm"`
	Resumable     []string `yaml:"resumable"`
	Sound         bool     `yaml:"sound"`
	FrameInterval string   `yaml:"frame_interval"`
	Seed          uint64   `yaml:"seed"`
	LogLevel      string   `yaml:"log_level"`
}

// Kind returns the configured algorithm.
func (c *Config) Kind() engine.Kind {
	k, err := engine.ParseKind(c.Algorithm)
	if err != nil {
		return engine.Bubble
	}
	return k
}

// Policy returns the configured resumability policy.
func (c *Config) Policy() engine.Policy {
	p := engine.Policy{}
	for _, name := range c.Resumable {
		if k, err := engine.ParseKind(name); err == nil {
			p[k] = true
		}
	}
	return p
}

// Frame returns the minimum pause after each draw.
func (c *Config) Frame() time.Duration {
	d, err := time.ParseDuration(c.FrameInterval)
	if err != nil {
		return DefaultFrameInterval
	}
	return d
}

// Level returns the configured log level.
func (c *Config) Level() logging.Level {
	l, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return logging.LevelWarn
	}
	return l
}

// Overrides carries command-line values. Nil fields leave the file value in
// place.
type Overrides struct {
	Elements      *int
	Speed         *int
	Algorithm     *string
	Resumable     *[]string
	Sound         *bool
	FrameInterval *time.Duration
	Seed          *uint64
	LogLevel      *string
}
