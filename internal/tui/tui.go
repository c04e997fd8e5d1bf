// Package tui is the terminal front end: it owns raw mode and key input,
// and acts as the engine's host by draining keys at poll points and drawing
// bars plus an info panel on each throttled draw.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/thruflo/sortvis/internal/config"
	"github.com/thruflo/sortvis/internal/controller"
	"github.com/thruflo/sortvis/internal/engine"
	"github.com/thruflo/sortvis/internal/logging"
	"k8s.io/utils/clock"
)

// Options configures an App.
type Options struct {
	// Out receives frames. Defaults to stdout.
	Out io.Writer
	// Sound starts with the bell enabled.
	Sound bool
	// FrameInterval is slept after every draw.
	FrameInterval time.Duration
	// Clock paces frames and times runs.
	Clock clock.Clock
	// Logger receives UI events. Nil uses the package default.
	Logger *logging.Logger
	// Renderer decides how colours are written. Defaults to one detected
	// from Out.
	Renderer *lipgloss.Renderer
}

// App is the interactive visualizer. It implements engine.Host and
// engine.Feedbacker.
type App struct {
	term  *Terminal
	ctrl  *controller.Controller
	bars  *BarsView
	panel *PanelView
	bell  *Notifier
	clock clock.Clock
	frame time.Duration
	log   *logging.Logger
	size  func() (int, int, error)

	ctx        context.Context
	keys       <-chan KeyEvent
	keysClosed bool

	width, height int
	message       string
	pause         bool
	quit          bool
}

var (
	_ engine.Host       = (*App)(nil)
	_ engine.Feedbacker = (*App)(nil)
)

// New creates an App and the controller it hosts.
func New(ctrlOpts controller.Options, opts Options) (*App, error) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.RealClock{}
	}
	log := opts.Logger
	if log == nil {
		log = logging.Default()
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.NewRenderer(out)
	}

	if ctrlOpts.Clock == nil {
		ctrlOpts.Clock = clk
	}
	if ctrlOpts.Logger == nil {
		ctrlOpts.Logger = log
	}

	term := NewTerminal(out)
	a := &App{
		term:   term,
		bars:   NewBarsView(renderer),
		panel:  NewPanelView(renderer),
		bell:   NewNotifier(out, clk),
		clock:  clk,
		frame:  opts.FrameInterval,
		log:    log.With("component", "tui"),
		size:   term.Size,
		ctx:    context.Background(),
		width:  80,
		height: 24,
	}
	a.bell.SetEnabled(opts.Sound)

	ctrl, err := controller.New(a, ctrlOpts)
	if err != nil {
		return nil, err
	}
	a.ctrl = ctrl
	return a, nil
}

// Controller returns the hosted controller.
func (a *App) Controller() *controller.Controller {
	return a.ctrl
}

// Run takes over the terminal until the user quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	if !a.term.IsTerminal() {
		return fmt.Errorf("stdin is not a terminal")
	}
	if err := a.term.EnterRaw(); err != nil {
		return err
	}
	defer a.term.ExitRaw()

	a.term.Open()
	defer a.term.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := make(chan KeyEvent, 32)
	errs := make(chan error, 1)
	go readKeys(ctx, NewKeyReader(a.term), keys, errs)

	return a.loop(ctx, keys, errs)
}

// readKeys forwards decoded keys until the reader fails or ctx is done. A
// read already blocked on stdin only notices ctx after the next key arrives.
func readKeys(ctx context.Context, reader *KeyReader, keys chan<- KeyEvent, errs chan<- error) {
	for {
		ev, err := reader.ReadKey()
		if err != nil {
			select {
			case errs <- err:
			case <-ctx.Done():
			}
			return
		}
		select {
		case keys <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// loop shuffles once, then handles keys between runs. Runs themselves
// block inside handle; keys pressed during a run are consumed by Cancelled.
func (a *App) loop(ctx context.Context, keys <-chan KeyEvent, errs <-chan error) error {
	a.ctx, a.keys = ctx, keys

	if err := a.ctrl.RequestShuffle(); err != nil {
		return err
	}

	for !a.quit {
		a.Draw()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errs:
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		case ev, ok := <-keys:
			if !ok {
				return nil
			}
			a.handle(ParseCommand(ev))
		}
	}
	a.log.Debug("quit")
	return nil
}

func (a *App) handle(cmd Command) {
	running := a.ctrl.State() == controller.StateRunning

	switch cmd.Intent {
	case IntentSelect:
		a.report(a.ctrl.SelectAlgorithm(cmd.Kind))
	case IntentStart:
		if running {
			a.report(a.ctrl.RequestFastForward())
			return
		}
		a.message = ""
		if _, err := a.ctrl.RequestStart(); err != nil {
			a.report(err)
		}
	case IntentPause:
		if running {
			a.pause = true
		}
	case IntentShuffle:
		a.report(a.ctrl.RequestShuffle())
	case IntentFaster:
		a.ctrl.SetSpeed(a.ctrl.SpeedLevel() + 1)
	case IntentSlower:
		a.ctrl.SetSpeed(a.ctrl.SpeedLevel() - 1)
	case IntentResize:
		a.report(a.ctrl.Resize(config.NextSize(a.ctrl.Sequence().Len())))
	case IntentSound:
		a.bell.Toggle()
	case IntentQuit:
		a.quit = true
	}
}

func (a *App) report(err error) {
	if err != nil {
		a.message = err.Error()
		return
	}
	a.message = ""
}

// Cancelled handles at most one pending key and reports whether the run
// should stop here.
func (a *App) Cancelled() bool {
	if a.ctx.Err() != nil {
		a.quit = true
	}

	if !a.keysClosed && a.keys != nil {
		select {
		case ev, ok := <-a.keys:
			if !ok {
				a.keysClosed = true
				break
			}
			a.handle(ParseCommand(ev))
		default:
		}
	}

	if a.quit || a.pause {
		a.pause = false
		return true
	}
	return false
}

// Draw renders one frame and waits out the frame interval.
func (a *App) Draw() {
	if w, h, err := a.size(); err == nil && w > 0 && h > 0 {
		a.width, a.height = w, h
	}
	a.term.Frame(a.render())
	if a.frame > 0 {
		a.clock.Sleep(a.frame)
	}
}

// Feedback rings the bell when sound is on.
func (a *App) Feedback() {
	a.bell.Tick()
}

func (a *App) render() string {
	seq := a.ctrl.Sequence()
	snap := a.ctrl.Snapshot()

	barHeight := max(1, a.height-PanelHeight)
	lines := a.bars.Render(seq.Values(), snap.Telemetry.Highlight, seq.Len(), a.width, barHeight)
	lines = append(lines, a.panel.Render(PanelState{
		Run:     snap,
		Sound:   a.bell.Enabled(),
		Message: a.message,
	}, a.width)...)

	return strings.Join(lines, ClearLine+"\r\n") + ClearLine
}
