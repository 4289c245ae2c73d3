// Package replay drives a cache model from a memory-access trace.
package replay

import (
	"github.com/sarchlab/cachesim/cache"
	"github.com/sarchlab/cachesim/trace"
)

// Summary is the output contract of a replay run: the three aggregate
// counters, in the shape the report formatter consumes.
type Summary struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// A Replayer replays trace records against a single cache instance. It owns
// the cache and the scanner for the duration of the run; nothing else may
// observe or mutate them while a replay is in flight.
type Replayer struct {
	cache    *cache.Cache
	scanner  *trace.Scanner
	tracers  []Tracer
	consumed uint64
	done     bool
}

// Option configures a Replayer.
type Option func(*Replayer)

// WithTracer attaches a tracer that observes every replayed record.
func WithTracer(t Tracer) Option {
	return func(r *Replayer) {
		r.tracers = append(r.tracers, t)
	}
}

// NewReplayer creates a replayer that drives c from scanner.
func NewReplayer(c *cache.Cache, scanner *trace.Scanner, opts ...Option) *Replayer {
	r := &Replayer{
		cache:   c,
		scanner: scanner,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run consumes records until the trace ends and returns the run summary.
func (r *Replayer) Run() Summary {
	for r.Step() {
	}

	stats := r.cache.Stats()

	return Summary{
		Hits:      stats.Hits,
		Misses:    stats.Misses,
		Evictions: stats.Evictions,
	}
}

// Step replays one record. A record's opcode decides how many accesses it
// models: loads and stores one, modifies two to the same address (the data
// load followed by the store, which always hits), anything else none.
// Step reports false once the trace is exhausted.
func (r *Replayer) Step() bool {
	if r.done {
		return false
	}

	rec, ok := r.scanner.Next()
	if !ok {
		r.done = true
		return false
	}
	r.consumed++

	var outcomes []cache.AccessResult
	switch rec.Op {
	case trace.OpLoad, trace.OpStore:
		outcomes = []cache.AccessResult{r.cache.Access(rec.Addr)}
	case trace.OpModify:
		first := r.cache.Access(rec.Addr)
		second := r.cache.Access(rec.Addr)
		outcomes = []cache.AccessResult{first, second}
	default:
		// Instruction markers and unknown opcodes are consumed from the
		// trace but model no access.
	}

	for _, t := range r.tracers {
		t.RecordReplayed(rec, outcomes)
	}

	return true
}

// Done reports whether the replayer has reached the end of its trace.
func (r *Replayer) Done() bool {
	return r.done
}

// RecordsConsumed returns how many records were parsed before the trace
// ended. The trace format truncates silently at the first unparsable
// record, so this count is the only way to tell a short input from a
// complete one.
func (r *Replayer) RecordsConsumed() uint64 {
	return r.consumed
}
