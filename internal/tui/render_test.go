package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thruflo/sortvis/internal/controller"
)

func TestBoxWithContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		width   int
		content []string
		want    []string
	}{
		{
			name:    "single line",
			width:   10,
			content: []string{"swaps"},
			want: []string{
				"┌────────┐",
				"│ swaps  │",
				"└────────┘",
			},
		},
		{
			name:    "truncated line",
			width:   10,
			content: []string{"comparisons"},
			want: []string{
				"┌────────┐",
				"│ com... │",
				"└────────┘",
			},
		},
		{
			name:    "no content",
			width:   4,
			content: nil,
			want:    []string{"┌──┐", "└──┘"},
		},
		{
			name:    "too narrow",
			width:   3,
			content: []string{"x"},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, BoxWithContent(tt.width, tt.content))
		})
	}
}

func TestPadOrTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"pad", "heap", 6, "heap  "},
		{"exact", "heap", 4, "heap"},
		{"truncate", "selection", 7, "sele..."},
		{"tiny width", "merge", 2, "me"},
		{"zero width", "merge", 0, ""},
		{"styled pad", FgGreen + "hi" + Reset, 4, FgGreen + "hi" + Reset + "  "},
		{"styled truncate", FgGreen + "hello world" + Reset, 8, FgGreen + "hello" + Reset + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := PadOrTruncate(tt.input, tt.width)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.width, VisualWidth(got))
		})
	}
}

func TestCenterText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "  ab  ", CenterText("ab", 6))
	assert.Equal(t, " ab  ", CenterText("ab", 5))
	assert.Equal(t, "abc", CenterText("abc", 3))
}

func TestStyle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "plain", Style("plain"))
	assert.Equal(t, Bold+FgCyan+"x"+Reset, Style("x", Bold, FgCyan))
}

func TestFormatState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		state controller.RunState
		color string
	}{
		{controller.StateIdle, FgBrightBlack},
		{controller.StateRunning, FgGreen},
		{controller.StateInterrupted, FgYellow},
		{controller.StateSorted, FgBrightGreen},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.color, StateColor(tt.state))
		assert.Equal(t, Style(tt.state.String(), tt.color, Bold), FormatState(tt.state))
	}
	assert.Equal(t, "unknown", FormatState(controller.RunState(9)))
}
