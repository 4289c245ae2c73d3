package replay

import (
	"fmt"
	"log"
	"strings"

	"github.com/sarchlab/cachesim/cache"
	"github.com/sarchlab/cachesim/trace"
)

// A Tracer observes every replayed record together with the outcomes of the
// cache accesses it modeled. Records that model no access are delivered with
// an empty outcome slice. Tracers must not mutate the cache.
type Tracer interface {
	RecordReplayed(rec trace.Record, outcomes []cache.AccessResult)
}

// logTracer prints one line per modeled record: the record followed by the
// outcome of each access it generated, e.g. "M 20,1 miss hit" or
// "L 110,1 miss eviction".
type logTracer struct {
	logger *log.Logger
}

// NewLogTracer creates a tracer that writes per-record outcome lines to
// logger.
func NewLogTracer(logger *log.Logger) Tracer {
	return &logTracer{logger: logger}
}

// RecordReplayed prints the record and its outcomes.
func (t *logTracer) RecordReplayed(rec trace.Record, outcomes []cache.AccessResult) {
	if len(outcomes) == 0 {
		return
	}

	var line strings.Builder
	fmt.Fprintf(&line, "%c %x,%d", rec.Op, rec.Addr, rec.Size)
	for _, outcome := range outcomes {
		line.WriteByte(' ')
		line.WriteString(outcomeString(outcome))
	}

	t.logger.Println(line.String())
}

func outcomeString(outcome cache.AccessResult) string {
	switch {
	case outcome.Hit:
		return "hit"
	case outcome.Evicted:
		return "miss eviction"
	default:
		return "miss"
	}
}
