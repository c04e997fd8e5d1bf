package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thruflo/sortvis/internal/controller"
)

// Box drawing characters (Unicode)
const (
	BoxTopLeft     = "┌"
	BoxTopRight    = "┐"
	BoxBottomLeft  = "└"
	BoxBottomRight = "┘"
	BoxHorizontal  = "─"
	BoxVertical    = "│"
)

// BoxWithContent draws a box containing the given content lines.
// Each line is padded or truncated to fit within the box.
func BoxWithContent(width int, content []string) []string {
	if width < 4 {
		return nil
	}

	innerWidth := width - 4
	lines := make([]string, 0, len(content)+2)

	lines = append(lines, BoxTopLeft+strings.Repeat(BoxHorizontal, width-2)+BoxTopRight)
	for _, line := range content {
		lines = append(lines, BoxVertical+" "+PadOrTruncate(line, innerWidth)+" "+BoxVertical)
	}
	lines = append(lines, BoxBottomLeft+strings.Repeat(BoxHorizontal, width-2)+BoxBottomRight)

	return lines
}

// VisualWidth returns the printed width of s, ignoring ANSI sequences.
func VisualWidth(s string) int {
	return lipgloss.Width(s)
}

// PadOrTruncate pads or truncates s to exactly width printed cells.
// Escape sequences are kept intact when truncating.
func PadOrTruncate(s string, width int) string {
	if width <= 0 {
		return ""
	}

	w := VisualWidth(s)
	if w <= width {
		return s + strings.Repeat(" ", width-w)
	}

	if width < 3 {
		return cut(s, width)
	}
	return cut(s, width-3) + "..."
}

// cut keeps the first n printed runes of s. Any escape sequence seen is
// kept, and a trailing Reset is added if styling was open.
func cut(s string, n int) string {
	var sb strings.Builder
	styled := false
	printed := 0
	inEscape := false

	for _, r := range s {
		switch {
		case inEscape:
			sb.WriteRune(r)
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEscape = false
			}
		case r == '\033':
			if printed >= n {
				continue
			}
			inEscape = true
			styled = true
			sb.WriteRune(r)
		case printed < n:
			sb.WriteRune(r)
			printed++
		}
	}

	out := sb.String()
	if styled && !strings.HasSuffix(out, Reset) {
		out += Reset
	}
	return out
}

// CenterText centers s within width printed cells.
func CenterText(s string, width int) string {
	w := VisualWidth(s)
	if w >= width {
		return PadOrTruncate(s, width)
	}

	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// Style applies ANSI style codes to text.
func Style(s string, codes ...string) string {
	if len(codes) == 0 {
		return s
	}
	return strings.Join(codes, "") + s + Reset
}

// StateColor returns a colour code for the given run state.
func StateColor(s controller.RunState) string {
	switch s {
	case controller.StateRunning:
		return FgGreen
	case controller.StateSorted:
		return FgBrightGreen
	case controller.StateInterrupted:
		return FgYellow
	case controller.StateIdle:
		return FgBrightBlack
	default:
		return ""
	}
}

// FormatState formats a run state with its colour.
func FormatState(s controller.RunState) string {
	color := StateColor(s)
	if color == "" {
		return s.String()
	}
	return Style(s.String(), color, Bold)
}
