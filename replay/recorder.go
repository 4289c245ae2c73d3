package replay

import (
	"fmt"

	"github.com/sarchlab/akita/v4/datarecording"

	"github.com/sarchlab/cachesim/cache"
	"github.com/sarchlab/cachesim/trace"
)

// accessEntry is one modeled access as stored in the recording database.
type accessEntry struct {
	Seq     uint64 `json:"seq" akita_data:"unique"`
	Op      string `json:"op" akita_data:"index"`
	Address uint64 `json:"address" akita_data:"index"`
	Size    int    `json:"size"`
	Outcome string `json:"outcome" akita_data:"index"`
}

// dbRecorder stores every modeled access in a database through the Akita
// data recorder, one row per access. Modify records produce two rows.
type dbRecorder struct {
	recorder datarecording.DataRecorder
	seq      uint64
}

// NewDBRecorder creates a tracer that records accesses into dataRecorder.
// The "trace_accesses" table is created immediately.
func NewDBRecorder(dataRecorder datarecording.DataRecorder) Tracer {
	r := &dbRecorder{recorder: dataRecorder}
	r.recorder.CreateTable("trace_accesses", accessEntry{})

	return r
}

// RecordReplayed inserts one row per modeled access.
func (r *dbRecorder) RecordReplayed(rec trace.Record, outcomes []cache.AccessResult) {
	for _, outcome := range outcomes {
		r.seq++

		entry := accessEntry{
			Seq:     r.seq,
			Op:      fmt.Sprintf("%c", rec.Op),
			Address: rec.Addr,
			Size:    rec.Size,
			Outcome: outcomeString(outcome),
		}

		r.recorder.InsertData("trace_accesses", entry)
	}
}
