package tui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/sortvis/internal/controller"
	"github.com/thruflo/sortvis/internal/engine"
	"github.com/thruflo/sortvis/internal/logging"
	"github.com/thruflo/sortvis/internal/testutil"
	testclock "k8s.io/utils/clock/testing"
)

type harness struct {
	app  *App
	out  *bytes.Buffer
	keys chan KeyEvent
	errs chan error
	clk  *testclock.FakeClock
}

func newHarness(t *testing.T, ctrlOpts controller.Options, opts Options) *harness {
	t.Helper()

	if ctrlOpts.Elements == 0 {
		ctrlOpts.Elements = 20
	}
	if ctrlOpts.Seed == 0 {
		ctrlOpts.Seed = 3
	}
	if ctrlOpts.SpeedLevel == 0 {
		ctrlOpts.SpeedLevel = 4
	}

	h := &harness{
		out:  &bytes.Buffer{},
		keys: make(chan KeyEvent, 16),
		errs: make(chan error, 1),
		clk:  testclock.NewFakeClock(time.Unix(0, 0)),
	}
	opts.Out = h.out
	opts.Clock = h.clk
	opts.Logger = logging.Discard()
	opts.Renderer = plainRenderer()

	app, err := New(ctrlOpts, opts)
	require.NoError(t, err)
	app.size = func() (int, int, error) { return 60, 20, nil }
	h.app = app
	return h
}

func (h *harness) press(evs ...KeyEvent) {
	for _, ev := range evs {
		h.keys <- ev
	}
}

func (h *harness) run(t *testing.T) error {
	t.Helper()
	close(h.keys)
	ctx, cancel := testutil.ShortOperationContext(t)
	defer cancel()
	return h.app.loop(ctx, h.keys, h.errs)
}

func key(r rune) KeyEvent { return KeyEvent{Key: KeyRune, Rune: r} }

var esc = KeyEvent{Key: KeyEscape}

func TestApp_StartRunsToSorted(t *testing.T) {
	t.Parallel()

	h := newHarness(t, controller.Options{}, Options{})
	h.press(key(' '))

	require.NoError(t, h.run(t))

	ctrl := h.app.Controller()
	assert.Equal(t, controller.StateSorted, ctrl.State())
	assert.True(t, ctrl.Sequence().IsSorted())

	out := stripAnsi(h.out.String())
	assert.Contains(t, out, "Bubble Sort")
	assert.Contains(t, out, "sorted: S shuffles")
}

func TestApp_PauseThenResume(t *testing.T) {
	t.Parallel()

	h := newHarness(t, controller.Options{}, Options{})
	h.press(key(' '), key('p'))

	require.NoError(t, h.run(t))
	ctrl := h.app.Controller()
	assert.Equal(t, controller.StateInterrupted, ctrl.State())
	assert.Equal(t, engine.Bubble, ctrl.Cursor().Kind())
	assert.True(t, ctrl.Sequence().IsPermutation())

	h2 := newHarness(t, controller.Options{}, Options{})
	h2.press(key(' '), key('p'), key(' '))
	require.NoError(t, h2.run(t))
	assert.Equal(t, controller.StateSorted, h2.app.Controller().State())
	assert.True(t, h2.app.Controller().Sequence().IsSorted())
}

func TestApp_QuitMidRunAbandonsNonResumable(t *testing.T) {
	t.Parallel()

	h := newHarness(t, controller.Options{}, Options{})
	h.press(key('q'), key(' '), esc, key(' '))

	require.NoError(t, h.run(t))

	ctrl := h.app.Controller()
	assert.Equal(t, engine.Quick, ctrl.Algorithm())
	assert.Equal(t, controller.StateIdle, ctrl.State())
	assert.True(t, ctrl.Snapshot().NeedsShuffle)
	assert.True(t, ctrl.Sequence().IsPermutation())
	assert.Len(t, h.keys, 1, "keys after quit stay unread")
}

func TestApp_SelectRefusedDuringRun(t *testing.T) {
	t.Parallel()

	h := newHarness(t, controller.Options{}, Options{})
	h.press(key(' '), key('h'), key('p'))

	require.NoError(t, h.run(t))

	ctrl := h.app.Controller()
	assert.Equal(t, engine.Bubble, ctrl.Algorithm())
	assert.Equal(t, controller.StateInterrupted, ctrl.State())
	assert.Equal(t, controller.ErrRunInProgress.Error(), h.app.message)
}

func TestApp_FastForward(t *testing.T) {
	t.Parallel()

	h := newHarness(t, controller.Options{Elements: 50}, Options{FrameInterval: 10 * time.Millisecond})
	h.press(key('-'), key('-'), key('-'), key('-'), key(' '), key(' '))

	require.NoError(t, h.run(t))

	ctrl := h.app.Controller()
	assert.Equal(t, 0, ctrl.SpeedLevel())
	assert.Equal(t, controller.StateSorted, ctrl.State())
	assert.False(t, ctrl.Snapshot().FastForward)
	assert.Zero(t, ctrl.Snapshot().Telemetry.Elapsed, "no frames slept after fast-forward engaged at the first poll")
}

func TestApp_IdleKeys(t *testing.T) {
	t.Parallel()

	h := newHarness(t, controller.Options{Elements: 100, SpeedLevel: 2}, Options{})
	h.press(key('+'), key('+'), key('-'), KeyEvent{Key: KeyUp}, key('x'), key('r'), key('g'), key('p'))

	require.NoError(t, h.run(t))

	ctrl := h.app.Controller()
	assert.Equal(t, 4, ctrl.SpeedLevel())
	assert.True(t, h.app.bell.Enabled())
	assert.Equal(t, 200, ctrl.Sequence().Len())
	assert.True(t, ctrl.Sequence().IsPermutation())
	assert.Equal(t, engine.Gnome, ctrl.Algorithm())
	assert.Equal(t, controller.StateIdle, ctrl.State())
}

func TestApp_ResizeNeedsIdle(t *testing.T) {
	t.Parallel()

	h := newHarness(t, controller.Options{}, Options{})
	h.press(key(' '), key('p'), key('r'))

	require.NoError(t, h.run(t))
	ctrl := h.app.Controller()
	assert.Equal(t, controller.StateInterrupted, ctrl.State())
	assert.Equal(t, 20, ctrl.Sequence().Len())
	assert.Equal(t, controller.ErrNotIdle.Error(), h.app.message)

	h2 := newHarness(t, controller.Options{}, Options{})
	h2.press(key(' '), key('p'), key('s'), key('r'))

	require.NoError(t, h2.run(t))
	ctrl = h2.app.Controller()
	assert.Equal(t, controller.StateIdle, ctrl.State())
	assert.Equal(t, 50, ctrl.Sequence().Len())
	assert.Empty(t, h2.app.message)
}

func TestApp_SoundRingsOnDraw(t *testing.T) {
	t.Parallel()

	h := newHarness(t, controller.Options{}, Options{Sound: true, FrameInterval: time.Second})
	h.press(key(' '))

	require.NoError(t, h.run(t))
	assert.Positive(t, strings.Count(h.out.String(), Bell))
}

func TestApp_ContextCancelled(t *testing.T) {
	t.Parallel()

	h := newHarness(t, controller.Options{}, Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := h.app.loop(ctx, h.keys, h.errs)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestApp_ReaderErrors(t *testing.T) {
	t.Parallel()

	h := newHarness(t, controller.Options{}, Options{})
	h.errs <- io.EOF
	assert.NoError(t, h.app.loop(context.Background(), h.keys, h.errs))

	h = newHarness(t, controller.Options{}, Options{})
	boom := errors.New("read failed")
	h.errs <- boom
	assert.ErrorIs(t, h.app.loop(context.Background(), h.keys, h.errs), boom)
}

func TestReadKeys_StopsWhenCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	keys := make(chan KeyEvent)
	errs := make(chan error, 1)
	done := make(chan struct{})

	go func() {
		readKeys(ctx, NewKeyReader(strings.NewReader("sssss")), keys, errs)
		close(done)
	}()

	assert.Equal(t, key('s'), <-keys)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("reader still blocked sending keys after cancel")
	}
	assert.Empty(t, errs)
}

func TestReadKeys_ForwardsReadError(t *testing.T) {
	t.Parallel()

	keys := make(chan KeyEvent, 4)
	errs := make(chan error, 1)
	readKeys(context.Background(), NewKeyReader(strings.NewReader("p")), keys, errs)

	require.Len(t, keys, 1)
	assert.Equal(t, key('p'), <-keys)
	assert.ErrorIs(t, <-errs, io.EOF)
}

func TestApp_RenderFillsScreen(t *testing.T) {
	t.Parallel()

	h := newHarness(t, controller.Options{}, Options{})
	h.app.Draw()
	frame := h.app.render()
	lines := strings.Split(frame, "\r\n")

	assert.Len(t, lines, 20)
	for _, l := range lines {
		assert.Equal(t, 60, VisualWidth(strings.TrimSuffix(l, ClearLine)))
	}
}

func TestNew_InvalidController(t *testing.T) {
	t.Parallel()

	_, err := New(controller.Options{Elements: 0}, Options{Out: io.Discard})
	assert.ErrorIs(t, err, controller.ErrInvalidSize)
}
