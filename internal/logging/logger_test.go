package logging

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captured(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := New()
	logger.SetLevel(level)
	logger.SetOutput(log.New(&buf, "", 0))
	return logger, &buf
}

func emit(l *Logger, level Level, msg string) {
	switch level {
	case LevelDebug:
		l.Debug(msg)
	case LevelInfo:
		l.Info(msg)
	case LevelWarn:
		l.Warn(msg)
	case LevelError:
		l.Error(msg)
	}
}

func TestLoggerLevels(t *testing.T) {
	t.Parallel()

	levels := []Level{LevelDebug, LevelInfo, LevelWarn, LevelError}
	for _, min := range levels {
		for _, at := range levels {
			t.Run(min.String()+"/"+at.String(), func(t *testing.T) {
				t.Parallel()

				logger, buf := captured(min)
				emit(logger, at, "run started")

				if at >= min {
					assert.Equal(t, at.String()+": run started\n", buf.String())
				} else {
					assert.Empty(t, buf.String())
				}
			})
		}
	}
}

func TestLogger_FieldsAreSorted(t *testing.T) {
	t.Parallel()

	logger, buf := captured(LevelDebug)
	logger.WithFields(map[string]interface{}{
		"run_id":    "r1",
		"algorithm": "heap",
	}).Info("run sorted", "swaps", 42, "elapsed", "1.5s")

	assert.Equal(t, "INFO: run sorted | algorithm=heap elapsed=1.5s run_id=r1 swaps=42\n", buf.String())
}

func TestLogger_ChildDoesNotLeakFields(t *testing.T) {
	t.Parallel()

	logger, buf := captured(LevelDebug)
	child := logger.With("run_id", "abc").With("algorithm", "merge")
	child.Warn("interrupted")
	logger.Warn("shuffled")

	out := buf.String()
	assert.Contains(t, out, "WARN: interrupted | algorithm=merge run_id=abc")
	assert.Contains(t, out, "WARN: shuffled\n")
}

func TestLogger_OddKeyValsIgnored(t *testing.T) {
	t.Parallel()

	logger, buf := captured(LevelDebug)
	logger.Error("refused", "error", errors.New("run in progress"), "dangling")

	assert.Equal(t, "ERROR: refused | error=\"run in progress\"\n", buf.String())
}

type kindName string

func (k kindName) String() string { return string(k) }

func TestFormatValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input interface{}
		want  string
	}{
		{"plain string", "bubble", "bubble"},
		{"string with spaces", "Bubble Sort", `"Bubble Sort"`},
		{"empty string", "", `""`},
		{"integer", 42, "42"},
		{"error", errors.New("oops"), `"oops"`},
		{"stringer", kindName("quick"), "quick"},
		{"bool", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, formatValue(tt.input))
		})
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{" warn ", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"trace", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got)
	}
	assert.Equal(t, "UNKNOWN", Level(9).String())
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	logger := Discard()
	logger.Error("nothing")
	assert.Greater(t, logger.Level(), LevelError)
}

// Not parallel: mutates the package-level logger.
func TestDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(log.New(&buf, "", 0))
	SetLevel(LevelInfo)
	t.Cleanup(func() {
		SetOutput(log.New(&bytes.Buffer{}, "", 0))
		SetLevel(LevelWarn)
	})

	Debug("hidden")
	assert.Empty(t, buf.String())

	Info("session started", "elements", 20)
	assert.Equal(t, "INFO: session started | elements=20\n", buf.String())

	buf.Reset()
	Error("session failed")
	assert.Contains(t, buf.String(), "ERROR: session failed")
	assert.Same(t, defaultLogger, Default())
	assert.Equal(t, LevelInfo, Default().Level())
}
