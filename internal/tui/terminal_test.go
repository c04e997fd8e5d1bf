package tui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminal_Output(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func(*Terminal)
		want string
	}{
		{"open", (*Terminal).Open, AltScreenOn + CursorHide + ClearScreen + CursorHome},
		{"close", (*Terminal).Close, Reset + CursorShow + AltScreenOff},
		{"frame", func(t *Terminal) { t.Frame("bars") }, CursorHome + "bars" + ClearToEnd},
		{"empty frame", func(t *Terminal) { t.Frame("") }, CursorHome + ClearToEnd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			tt.fn(NewTerminal(&buf))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestTerminal_ExitRawWhenNotRaw(t *testing.T) {
	t.Parallel()

	term := NewTerminal(&bytes.Buffer{})
	assert.NoError(t, term.ExitRaw())
	assert.NoError(t, term.ExitRaw())
}
