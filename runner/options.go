package runner

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Options configures a Runner.
type Options struct {
	// Seed for the generator; used only when HasSeed is true.
	Seed    int64
	HasSeed bool
	// Interval between ticks of Run.
	Interval time.Duration
	// StepsPerTick is how many generator steps Run performs per tick.
	StepsPerTick int
	// Logger receives lifecycle events. Defaults to a discarding logger.
	Logger logrus.FieldLogger
}

// DefaultOptions returns a 16ms interval, one step per tick, no fixed seed
// and a silent logger.
func DefaultOptions() Options {
	silent := logrus.New()
	silent.SetOutput(io.Discard)
	return Options{
		Interval:     16 * time.Millisecond,
		StepsPerTick: 1,
		Logger:       silent,
	}
}

// Option mutates Options.
type Option func(*Options)

// WithSeed fixes the generator seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.HasSeed = true
	}
}

// WithInterval sets the tick interval. Panics if d is negative.
func WithInterval(d time.Duration) Option {
	if d < 0 {
		panic("runner: WithInterval(d<0)")
	}
	return func(o *Options) {
		o.Interval = d
	}
}

// WithStepsPerTick sets the number of steps per tick. Panics if n < 1.
func WithStepsPerTick(n int) Option {
	if n < 1 {
		panic("runner: WithStepsPerTick(n<1)")
	}
	return func(o *Options) {
		o.StepsPerTick = n
	}
}

// WithLogger sets the lifecycle logger. Panics if l is nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("runner: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}
