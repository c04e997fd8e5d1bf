// Package controller owns the sequence and telemetry for the life of the
// process and moves between idle, running, interrupted and sorted in response
// to user requests.
package controller

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/thruflo/sortvis/internal/engine"
	"github.com/thruflo/sortvis/internal/logging"
	"github.com/thruflo/sortvis/internal/sequence"
	"github.com/thruflo/sortvis/internal/shuffle"
	"k8s.io/utils/clock"
)

// Options configures a Controller.
type Options struct {
	// Elements is the sequence length. Must be at least 1.
	Elements int
	// Algorithm is the initial selection. Defaults to bubble sort.
	Algorithm engine.Kind
	// SpeedLevel is clamped to the speed table.
	SpeedLevel int
	// Policy lists the algorithms that keep their cursor when interrupted.
	// Nil means engine.DefaultPolicy.
	Policy engine.Policy
	// Seed fixes the shuffle. Zero reseeds from the clock.
	Seed uint64
	// Clock drives elapsed time and shuffle reseeding.
	Clock clock.PassiveClock
	// Logger receives run transitions. Nil uses the package default.
	Logger *logging.Logger
}

// Snapshot is everything a renderer needs about the controller.
type Snapshot struct {
	State        RunState
	Algorithm    engine.Kind
	Elements     int
	RunID        string
	FastForward  bool
	Resumable    bool
	NeedsShuffle bool
	Telemetry    sequence.Snapshot
}

// Controller serialises runs and shuffles over one sequence. All methods
// must be called from the goroutine that owns the host; the host may call
// back into the controller from Cancelled and Draw while RequestStart or
// RequestShuffle is on the stack.
type Controller struct {
	seq      *sequence.Sequence
	tel      *sequence.Telemetry
	eng      *engine.Engine
	host     engine.Host
	shuffler *shuffle.Shuffler
	policy   engine.Policy
	log      *logging.Logger

	kind         engine.Kind
	state        RunState
	cursor       engine.Cursor
	needsShuffle bool
	shuffling    bool
	runID        string
}

// New creates a Controller in the idle state over an ascending sequence.
// Callers usually follow it with RequestShuffle.
func New(host engine.Host, opts Options) (*Controller, error) {
	if opts.Elements < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, opts.Elements)
	}
	if !opts.Algorithm.Valid() {
		return nil, fmt.Errorf("unknown algorithm %d", int(opts.Algorithm))
	}

	policy := opts.Policy
	if policy == nil {
		policy = engine.DefaultPolicy()
	}
	log := opts.Logger
	if log == nil {
		log = logging.Default()
	}

	tel := sequence.NewTelemetry(opts.Clock)
	seq, err := sequence.New(opts.Elements, tel)
	if err != nil {
		return nil, err
	}

	eng := engine.NewEngine(seq, host)
	eng.SetSpeedLevel(opts.SpeedLevel)

	return &Controller{
		seq:      seq,
		tel:      tel,
		eng:      eng,
		host:     host,
		shuffler: shuffle.New(shuffle.Options{Seed: opts.Seed, Clock: opts.Clock}),
		policy:   policy,
		log:      log,
		kind:     opts.Algorithm,
	}, nil
}

// State returns the current run state.
func (c *Controller) State() RunState { return c.state }

// Algorithm returns the selected algorithm.
func (c *Controller) Algorithm() engine.Kind { return c.kind }

// Sequence returns the shared sequence. Callers must only read it.
func (c *Controller) Sequence() *sequence.Sequence { return c.seq }

// SpeedLevel returns the current speed level.
func (c *Controller) SpeedLevel() int { return c.eng.SpeedLevel() }

// Cursor returns the resume cursor held while interrupted.
func (c *Controller) Cursor() engine.Cursor { return c.cursor }

// RunID identifies the current or most recent run.
func (c *Controller) RunID() string { return c.runID }

// Policy returns the resumability policy.
func (c *Controller) Policy() engine.Policy { return c.policy }

// Snapshot copies the state shown to the user.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		State:        c.state,
		Algorithm:    c.kind,
		Elements:     c.seq.Len(),
		RunID:        c.runID,
		FastForward:  c.eng.FastForward(),
		Resumable:    c.policy.Resumable(c.kind),
		NeedsShuffle: c.needsShuffle,
		Telemetry:    c.tel.Snapshot(),
	}
}

func (c *Controller) busy() bool {
	return c.state == StateRunning || c.shuffling
}

func (c *Controller) refuse(op string, err error) error {
	c.log.Debug("request refused", "op", op, "state", c.state, "error", err)
	return err
}

// SelectAlgorithm changes the algorithm used by the next run. It is refused
// unless the controller is idle or sorted.
func (c *Controller) SelectAlgorithm(k engine.Kind) error {
	if !k.Valid() {
		return c.refuse("select", fmt.Errorf("unknown algorithm %d", int(k)))
	}
	if c.busy() || (c.state != StateIdle && c.state != StateSorted) {
		return c.refuse("select", ErrRunInProgress)
	}
	if k != c.kind {
		c.log.Info("algorithm selected", "algorithm", k)
	}
	c.kind = k
	c.cursor = engine.Cursor{}
	return nil
}

// RequestStart runs the selected algorithm until it finishes or the host
// cancels it, resuming from the held cursor when interrupted. It blocks for
// the duration of the run and returns the state the run ended in.
func (c *Controller) RequestStart() (RunState, error) {
	switch {
	case c.busy():
		return c.state, c.refuse("start", ErrRunInProgress)
	case c.state == StateSorted:
		return c.state, c.refuse("start", ErrAlreadySorted)
	case c.needsShuffle:
		return c.state, c.refuse("start", ErrNeedsShuffle)
	}

	alg, err := engine.New(c.kind, c.seq.Len())
	if err != nil {
		return c.state, err
	}

	log := c.log
	if c.state == StateInterrupted {
		if err := alg.Restore(c.cursor); err != nil {
			// A fresh machine still sorts whatever order the sequence is in.
			c.log.Warn("discarding resume cursor", "cursor", c.cursor, "error", err)
			if alg, err = engine.New(c.kind, c.seq.Len()); err != nil {
				return c.state, err
			}
		}
		log = c.log.With("run_id", c.runID)
		log.Info("run resumed", "algorithm", c.kind, "cursor", c.cursor)
	} else {
		c.runID = uuid.NewString()
		log = c.log.With("run_id", c.runID)
		log.Info("run started", "algorithm", c.kind, "elements", c.seq.Len(), "speed", c.eng.SpeedLevel())
	}

	c.state = StateRunning
	c.cursor = engine.Cursor{}
	c.tel.StartTiming()

	status := c.eng.Run(alg)

	c.tel.StopTiming()
	c.eng.SetFastForward(false)

	switch status {
	case engine.StatusSorted:
		c.state = StateSorted
		c.tel.ClearHighlight()
		log.Info("run sorted",
			"algorithm", c.kind,
			"swaps", c.tel.Swaps(),
			"comparisons", c.tel.Comparisons(),
			"elapsed", c.tel.Elapsed(),
		)
	case engine.StatusInterrupted:
		if c.policy.Resumable(c.kind) {
			c.state = StateInterrupted
			c.cursor = alg.Cursor()
			log.Info("run interrupted", "algorithm", c.kind, "cursor", c.cursor)
		} else {
			c.state = StateIdle
			c.needsShuffle = true
			log.Info("run abandoned", "algorithm", c.kind, "swaps", c.tel.Swaps())
		}
	}
	return c.state, nil
}

// RequestFastForward suppresses drawing for the rest of the current run and
// freezes the elapsed time.
func (c *Controller) RequestFastForward() error {
	if c.state != StateRunning {
		return c.refuse("fast-forward", ErrNotRunning)
	}
	if c.eng.FastForward() {
		return nil
	}
	c.eng.SetFastForward(true)
	c.tel.StopTiming()
	c.log.Debug("fast-forward engaged", "run_id", c.runID)
	return nil
}

// RequestShuffle produces a fresh permutation and returns to idle, dropping
// any resume cursor.
func (c *Controller) RequestShuffle() error {
	if c.busy() {
		return c.refuse("shuffle", ErrRunInProgress)
	}
	c.shuffle()
	return nil
}

func (c *Controller) shuffle() {
	c.shuffling = true
	defer func() { c.shuffling = false }()

	c.state = StateIdle
	c.cursor = engine.Cursor{}
	c.needsShuffle = false
	c.shuffler.Shuffle(c.seq, c.host)
	c.log.Debug("shuffled", "elements", c.seq.Len())
}

// SetSpeed clamps and applies a speed level, returning the level in use.
// Changing speed mid-run marks the elapsed time as unreliable.
func (c *Controller) SetSpeed(level int) int {
	prev := c.eng.SpeedLevel()
	applied := c.eng.SetSpeedLevel(level)
	if applied != prev && c.state == StateRunning {
		c.tel.MarkElapsedUnreliable()
	}
	return applied
}

// Resize replaces the sequence with n elements and shuffles it. Only an
// idle controller can be resized.
func (c *Controller) Resize(n int) error {
	if c.busy() {
		return c.refuse("resize", ErrRunInProgress)
	}
	if c.state != StateIdle {
		return c.refuse("resize", ErrNotIdle)
	}
	if n < 1 {
		return c.refuse("resize", fmt.Errorf("%w: %d", ErrInvalidSize, n))
	}
	if err := c.seq.Resize(n); err != nil {
		return err
	}
	c.log.Info("resized", "elements", n)
	c.shuffle()
	return nil
}
