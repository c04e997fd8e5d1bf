package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/thruflo/sortvis/internal/controller"
	"github.com/thruflo/sortvis/internal/engine"
)

// Bar colours run from the lightest value to the darkest.
var (
	barLow       = [3]uint8{0xf3, 0xee, 0xfc}
	barHigh      = [3]uint8{0x69, 0x2b, 0xe0}
	barHighlight = lipgloss.Color("#F6AE2D")
)

const (
	barGlyphs    = "▁▂▃▄▅▆▇█"
	paletteSteps = 16
)

// gradient returns n colours evenly spaced between barLow and barHigh.
func gradient(n int) []lipgloss.Color {
	colors := make([]lipgloss.Color, n)
	for i := range colors {
		var rgb [3]uint8
		for c := range rgb {
			lo, hi := int(barLow[c]), int(barHigh[c])
			rgb[c] = uint8(lo + (hi-lo)*i/max(1, n-1))
		}
		colors[i] = lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2]))
	}
	return colors
}

// BarsView draws the sequence as vertical bars, one colour per value band.
type BarsView struct {
	palette   []lipgloss.Style
	highlight lipgloss.Style
}

// NewBarsView creates a BarsView whose styles come from r.
func NewBarsView(r *lipgloss.Renderer) *BarsView {
	colors := gradient(paletteSteps)
	palette := make([]lipgloss.Style, len(colors))
	for i, c := range colors {
		palette[i] = r.NewStyle().Foreground(c)
	}
	return &BarsView{
		palette:   palette,
		highlight: r.NewStyle().Foreground(barHighlight).Bold(true),
	}
}

// column is what one screen column shows.
type column struct {
	value     int
	highlight bool
	gap       bool
}

// layout maps values onto width columns. When there are more values than
// columns each column samples the first value of its bucket; otherwise each
// value gets an equal run of columns with a one-column gap once runs are
// wide enough.
func layout(values []int, highlight, width int) []column {
	n := len(values)
	if n == 0 || width <= 0 {
		return nil
	}

	if n >= width {
		cols := make([]column, width)
		for c := range cols {
			lo, hi := c*n/width, (c+1)*n/width
			cols[c] = column{value: values[lo], highlight: highlight >= lo && highlight < hi}
		}
		return cols
	}

	run := width / n
	cols := make([]column, 0, run*n)
	for i, v := range values {
		for k := 0; k < run; k++ {
			cols = append(cols, column{
				value:     v,
				highlight: i == highlight,
				gap:       run > 2 && k == run-1,
			})
		}
	}
	return cols
}

// Render returns height lines of bars. maxValue scales the bars; values are
// expected in [1, maxValue].
func (v *BarsView) Render(values []int, highlight, maxValue, width, height int) []string {
	if height <= 0 {
		return nil
	}
	lines := make([]string, height)
	cols := layout(values, highlight, width)
	if len(cols) == 0 || maxValue < 1 {
		for i := range lines {
			lines[i] = strings.Repeat(" ", max(0, width))
		}
		return lines
	}

	glyphs := []rune(barGlyphs)
	eighths := make([]int, len(cols))
	styles := make([]int, len(cols))
	for c, col := range cols {
		eighths[c] = max(1, col.value*height*8/maxValue)
		styles[c] = v.styleIndex(col, maxValue)
	}

	for row := 0; row < height; row++ {
		floor := (height - 1 - row) * 8
		var sb strings.Builder
		var run strings.Builder
		runStyle := -2

		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runStyle < 0 {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(v.style(runStyle).Render(run.String()))
			}
			run.Reset()
		}

		for c, col := range cols {
			glyph, style := ' ', -1
			if fill := eighths[c] - floor; !col.gap && fill > 0 {
				glyph = glyphs[min(fill, 8)-1]
				style = styles[c]
			}
			if style != runStyle {
				flush()
				runStyle = style
			}
			run.WriteRune(glyph)
		}
		flush()

		if pad := width - len(cols); pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
		lines[row] = sb.String()
	}
	return lines
}

// styleIndex is len(palette) for the highlight style, otherwise the
// palette band for the column's value.
func (v *BarsView) styleIndex(col column, maxValue int) int {
	if col.highlight {
		return len(v.palette)
	}
	if maxValue <= 1 {
		return 0
	}
	idx := (col.value - 1) * (len(v.palette) - 1) / (maxValue - 1)
	return max(0, min(idx, len(v.palette)-1))
}

func (v *BarsView) style(idx int) lipgloss.Style {
	if idx == len(v.palette) {
		return v.highlight
	}
	return v.palette[idx]
}

// PanelState is everything the info panel shows.
type PanelState struct {
	Run     controller.Snapshot
	Sound   bool
	Message string
}

// PanelView renders the info panel under the bars.
type PanelView struct {
	title lipgloss.Style
}

// NewPanelView creates a PanelView whose styles come from r.
func NewPanelView(r *lipgloss.Renderer) *PanelView {
	return &PanelView{title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#692be0"))}
}

// PanelHeight is the number of lines Render returns.
const PanelHeight = 7

// Render renders the panel at the given width.
func (p *PanelView) Render(s PanelState, width int) []string {
	if width < 20 {
		width = 20
	}
	run, tel := s.Run, s.Run.Telemetry

	title := fmt.Sprintf("%s | %s | %d elements",
		p.title.Render(s.Run.Algorithm.Title()),
		FormatState(run.State),
		run.Elements)
	if run.FastForward {
		title += " | " + Style("fast-forward", FgCyan)
	}

	elapsed := formatElapsed(tel.Elapsed)
	if tel.ElapsedUnreliable {
		elapsed = "~" + elapsed
	}
	level := engine.ClampSpeedLevel(tel.SpeedLevel)
	stats := fmt.Sprintf("swaps %d | comparisons %d | time %s | speed %d (%d/frame) | sound %s",
		tel.Swaps, tel.Comparisons, elapsed, level, engine.SpeedTable[level], onOff(s.Sound))

	message := s.Message
	if message == "" {
		message = hint(run)
	}

	content := []string{
		title,
		stats,
		Style("[B]ubble sh[E]ll [Q]uick [H]eap [C]ocktail [M]erge se[L]ection [I]nsertion [G]nome", Dim),
		Style("[space] start/fast-forward [P]ause [S]huffle [+/-] speed [R] size [X] sound [esc] quit", Dim),
		CenterText(message, width-4),
	}
	return BoxWithContent(width, content)
}

func hint(run controller.Snapshot) string {
	switch run.State {
	case controller.StateRunning:
		return "sorting..."
	case controller.StateInterrupted:
		return "paused: space resumes, S shuffles"
	case controller.StateSorted:
		return "sorted: S shuffles"
	}
	if run.NeedsShuffle {
		return run.Algorithm.Title() + " cannot resume: S shuffles"
	}
	return "space starts"
}

func formatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.2fs", d.Seconds())
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
