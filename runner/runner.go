package runner

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlmaze/generator"
	"github.com/katalvlaran/lvlmaze/grid"
)

// minInterval and maxInterval clamp SetInterval.
const (
	minInterval = time.Millisecond
	maxInterval = 2 * time.Second
)

// Snapshot is an immutable view of a run after some number of steps.
type Snapshot struct {
	RunID    uuid.UUID
	Label    generator.Label
	Seed     int64
	Steps    int
	Grid     *grid.Grid // private copy owned by the receiver
	Finished bool
}

// Runner drives one generation run.
//
// Step, RunToCompletion, Snapshot and Run must not be called concurrently
// with each other; the control methods (Pause, Resume, SetInterval and
// their readers) are safe from any goroutine.
type Runner struct {
	id           uuid.UUID
	label        generator.Label
	seed         int64
	alg          generator.Algorithm
	grid         *grid.Grid
	steps        int
	stepsPerTick int
	log          logrus.FieldLogger

	paused   atomic.Bool
	interval atomic.Int64 // time.Duration
}

// New builds the grid and generator for a run and initializes the generator.
// Returns the grid's or the generator's construction error, wrapped.
func New(label generator.Label, width, height int, opts ...Option) (*Runner, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	g, err := grid.New(width, height)
	if err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}
	seed := cfg.Seed
	if !cfg.HasSeed {
		seed = time.Now().UnixNano()
	}
	alg, err := generator.New(label, generator.WithSeed(seed))
	if err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}

	id := uuid.New()
	r := &Runner{
		id:           id,
		label:        label,
		seed:         seed,
		alg:          alg,
		grid:         g,
		stepsPerTick: cfg.StepsPerTick,
		log: cfg.Logger.WithFields(logrus.Fields{
			"run_id":    id.String(),
			"algorithm": label.String(),
			"size":      fmt.Sprintf("%dx%d", width, height),
			"seed":      seed,
		}),
	}
	r.interval.Store(int64(cfg.Interval))

	alg.Initialize(g)
	r.log.Debug("run initialized")
	return r, nil
}

// ID returns the run identifier.
func (r *Runner) ID() uuid.UUID { return r.id }

// Label returns the generator label.
func (r *Runner) Label() generator.Label { return r.label }

// Seed returns the generator seed, which reproduces the run.
func (r *Runner) Seed() int64 { return r.seed }

// Steps returns how many steps have been taken.
func (r *Runner) Steps() int { return r.steps }

// Finished reports whether generation has completed.
func (r *Runner) Finished() bool { return r.grid.Finished() }

// Step advances the generator once and reports whether it has finished.
func (r *Runner) Step() bool {
	if r.grid.Finished() {
		return true
	}
	r.alg.Step(r.grid)
	r.steps++
	return r.grid.Finished()
}

// RunToCompletion steps until the generator finishes and returns the grid.
// The returned grid is owned by the Runner; Clone it before sharing.
func (r *Runner) RunToCompletion() *grid.Grid {
	for !r.Step() {
	}
	r.log.WithField("steps", r.steps).Info("run finished")
	return r.grid
}

// Snapshot returns a copy of the current state.
func (r *Runner) Snapshot() Snapshot {
	return Snapshot{
		RunID:    r.id,
		Label:    r.label,
		Seed:     r.seed,
		Steps:    r.steps,
		Grid:     r.grid.Clone(),
		Finished: r.grid.Finished(),
	}
}

// Run starts a goroutine that advances the generator every Interval and
// publishes a Snapshot after each tick that made progress. The first value
// is the initial state. The channel is closed after the finished snapshot or
// when ctx is done.
func (r *Runner) Run(ctx context.Context) <-chan Snapshot {
	out := make(chan Snapshot, 1)
	go r.loop(ctx, out)
	return out
}

func (r *Runner) loop(ctx context.Context, out chan Snapshot) {
	defer close(out)
	r.log.Info("run started")
	publish(out, r.Snapshot())
	if r.grid.Finished() {
		r.log.WithField("steps", r.steps).Info("run finished")
		return
	}

	timer := time.NewTimer(r.Interval())
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			r.log.WithField("steps", r.steps).WithError(ctx.Err()).Info("run cancelled")
			return
		case <-timer.C:
		}

		if !r.Paused() {
			for i := 0; i < r.stepsPerTick; i++ {
				if r.Step() {
					break
				}
			}
			publish(out, r.Snapshot())
			if r.grid.Finished() {
				r.log.WithField("steps", r.steps).Info("run finished")
				return
			}
		}
		timer.Reset(r.Interval())
	}
}

// publish places s on out, discarding an unread older snapshot if needed.
// out must have capacity 1 and a single sender.
func publish(out chan Snapshot, s Snapshot) {
	for {
		select {
		case out <- s:
			return
		default:
		}
		select {
		case <-out:
		default:
		}
	}
}

// Pause stops Run from stepping until Resume.
func (r *Runner) Pause() {
	if !r.paused.Swap(true) {
		r.log.Debug("run paused")
	}
}

// Resume undoes Pause.
func (r *Runner) Resume() {
	if r.paused.Swap(false) {
		r.log.Debug("run resumed")
	}
}

// TogglePause flips the paused state and returns the new one.
func (r *Runner) TogglePause() bool {
	if r.Paused() {
		r.Resume()
		return false
	}
	r.Pause()
	return true
}

// Paused reports whether Run is paused.
func (r *Runner) Paused() bool { return r.paused.Load() }

// Interval returns the current tick interval.
func (r *Runner) Interval() time.Duration { return time.Duration(r.interval.Load()) }

// SetInterval changes the tick interval, clamped to [1ms, 2s]. It takes
// effect from the next tick.
func (r *Runner) SetInterval(d time.Duration) {
	d = min(max(d, minInterval), maxInterval)
	r.interval.Store(int64(d))
	r.log.WithField("interval", d).Debug("interval changed")
}

// Faster halves the tick interval.
func (r *Runner) Faster() { r.SetInterval(r.Interval() / 2) }

// Slower doubles the tick interval.
func (r *Runner) Slower() { r.SetInterval(r.Interval() * 2) }
