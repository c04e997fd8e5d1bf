// render-demo prints the bar and panel views for a few sequences without
// taking over the terminal, for checking colours and glyphs by eye.
// Run with: go run ./cmd/render-demo
package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	flag "github.com/spf13/pflag"
	"github.com/thruflo/sortvis/internal/controller"
	"github.com/thruflo/sortvis/internal/engine"
	"github.com/thruflo/sortvis/internal/sequence"
	"github.com/thruflo/sortvis/internal/shuffle"
	"github.com/thruflo/sortvis/internal/tui"
)

type quietHost struct{}

func (quietHost) Cancelled() bool { return false }
func (quietHost) Draw()           {}

func values(n int, seed uint64, reverse bool) []int {
	seq, err := sequence.New(n, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if seed != 0 {
		shuffle.New(shuffle.Options{Seed: seed}).Shuffle(seq, quietHost{})
	}
	v := seq.Values()
	if reverse {
		slices.Reverse(v)
	}
	return v
}

func main() {
	width := flag.Int("width", 72, "frame width")
	height := flag.Int("height", 10, "bar height")
	n := flag.Int("n", 36, "number of elements")
	flag.Parse()

	r := lipgloss.NewRenderer(os.Stdout)
	bars := tui.NewBarsView(r)
	panel := tui.NewPanelView(r)

	frames := []struct {
		title     string
		values    []int
		highlight int
		state     controller.RunState
		message   string
	}{
		{"ascending", values(*n, 0, false), sequence.NoHighlight, controller.StateSorted, ""},
		{"reversed", values(*n, 0, true), 0, controller.StateIdle, ""},
		{"shuffled", values(*n, 1, false), *n / 2, controller.StateRunning, ""},
		{"interrupted", values(*n, 2, false), 3, controller.StateInterrupted, "paused; press enter to resume"},
	}

	for _, f := range frames {
		fmt.Println(f.title)
		fmt.Println(strings.Join(bars.Render(f.values, f.highlight, *n, *width, *height), "\n"))
		state := tui.PanelState{
			Run: controller.Snapshot{
				State:     f.state,
				Algorithm: engine.Quick,
				Elements:  *n,
				Telemetry: sequence.Snapshot{Highlight: f.highlight, SpeedLevel: engine.DefaultSpeedLevel},
			},
			Message: f.message,
		}
		fmt.Println(strings.Join(panel.Render(state, *width), "\n"))
		fmt.Println()
	}
}
