// Package timing provides a small named-slot wall-clock recorder used to
// profile graph construction and traversal runs.
//
// A Recorder owns a growable set of slots addressed by integer id. Start
// stamps a slot with a name and the current time; Stop records the elapsed
// duration and, when a histogram is attached, observes it in seconds under
// the slot's name label. There is no global recorder: callers create one
// and hand it to the components they want profiled.
package timing

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SlotLabel is the histogram label carrying the slot name.
const SlotLabel = "slot"

// slot holds the measurement state for one named slot.
type slot struct {
	name    string
	started time.Time
	elapsed time.Duration
	running bool
}

// Recorder measures wall time under named slots. Safe for concurrent use;
// distinct slots never contend on anything but the Recorder mutex.
type Recorder struct {
	mu    sync.Mutex
	slots []slot
	hist  *prometheus.HistogramVec
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithHistogram attaches a HistogramVec labelled by slot name; every Stop
// observes the elapsed time in seconds. Panics on nil (programmer error).
func WithHistogram(h *prometheus.HistogramVec) Option {
	if h == nil {
		panic("timing: WithHistogram(nil)")
	}
	return func(r *Recorder) { r.hist = h }
}

// NewRecorder returns an empty Recorder.
func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// NewHistogram returns an unregistered HistogramVec shaped for
// WithHistogram; callers register it with their own prometheus registry.
func NewHistogram(name, help string) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    name,
		Help:    help,
		Buckets: prometheus.DefBuckets,
	}, []string{SlotLabel})
}

// ensure grows the slot table so id is addressable.
func (r *Recorder) ensure(id int) {
	for len(r.slots) <= id {
		r.slots = append(r.slots, slot{})
	}
}

// Start stamps slot id with name and the current time. Restarting a
// running slot discards its in-flight measurement.
func (r *Recorder) Start(id int, name string) {
	if id < 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensure(id)
	r.slots[id] = slot{name: name, started: time.Now(), running: true}
}

// Stop records the elapsed time for slot id and returns it. Stopping a
// slot that is not running returns zero and records nothing.
func (r *Recorder) Stop(id int) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id < 0 || id >= len(r.slots) || !r.slots[id].running {
		return 0
	}
	s := &r.slots[id]
	s.elapsed = time.Since(s.started)
	s.running = false
	if r.hist != nil {
		r.hist.WithLabelValues(s.name).Observe(s.elapsed.Seconds())
	}

	return s.elapsed
}

// Elapsed returns the last recorded duration for slot id.
func (r *Recorder) Elapsed(id int) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id < 0 || id >= len(r.slots) {
		return 0
	}

	return r.slots[id].elapsed
}

// Running reports whether slot id has been started and not yet stopped.
func (r *Recorder) Running(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return id >= 0 && id < len(r.slots) && r.slots[id].running
}

// Name returns the name slot id was last started under.
func (r *Recorder) Name(id int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id < 0 || id >= len(r.slots) {
		return ""
	}

	return r.slots[id].name
}
