// Package builder: functional options and the resolved config.
//
// Option constructors validate their inputs and panic on meaningless
// values (programmer error); the constructors themselves never panic at
// runtime and report problems through sentinel errors only.
package builder

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"runtime"
	"time"

	"github.com/visigraph/visigraph/timing"
)

// Option customizes generation by mutating a config before any
// constructor runs.
type Option func(*config)

// config aggregates all generation knobs. It is passed to constructors by
// value, so they cannot leak state into each other.
type config struct {
	ctx       context.Context
	rng       *rand.Rand
	workers   int
	log       *slog.Logger
	timer     *timing.Recorder
	timerSlot int
}

// newConfig resolves options in order (later overrides earlier) on top of
// deterministic defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		ctx:     context.Background(),
		rng:     nil, // resolved per-constructor from the Consistent flag
		workers: runtime.GOMAXPROCS(0),
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// resolveRNG returns the configured generator, or derives one from the
// flags: a fixed seed under Consistent, wall-clock entropy otherwise.
func (c config) resolveRNG(flags Flags) *rand.Rand {
	if c.rng != nil {
		return c.rng
	}
	if flags.Has(Consistent) {
		return rand.New(rand.NewSource(consistentSeed))
	}

	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// WithContext sets the context observed by the worker-pool constructor
// between units of work. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithRand provides an explicit RNG; it takes precedence over the
// Consistent flag. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed provides a freshly seeded RNG; equivalent to
// WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWorkers sets the worker-pool size for the Workers constructor.
// Panics on n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("builder: WithWorkers(n<1)")
	}
	return func(c *config) { c.workers = n }
}

// WithLogger attaches a structured logger for generation diagnostics.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

// WithTimer records each constructor's wall time under slot in rec.
// Panics on a nil recorder.
func WithTimer(rec *timing.Recorder, slot int) Option {
	if rec == nil {
		panic("builder: WithTimer(nil)")
	}
	return func(c *config) {
		c.timer = rec
		c.timerSlot = slot
	}
}
