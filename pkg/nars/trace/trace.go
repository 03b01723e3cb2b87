// Package trace implements a record.Recorder backed by
// golang.org/x/net/trace, so a running reasoner's cycle/admission events
// show up in the standard /debug/requests and /debug/events endpoints a
// driver wires up alongside its own HTTP surface, without needing a
// separate log file or terminal to watch.
package trace

import (
	"golang.org/x/net/trace"

	"github.com/cognicore/nars/pkg/nars/record"
)

// Recorder forwards every notification to an x/net/trace event log. One
// Recorder corresponds to one traced reasoning session; Finish releases it.
type Recorder struct {
	ev trace.EventLog
}

// New starts a trace event log titled title under the "nars.reasoner"
// family.
func New(title string) *Recorder {
	return &Recorder{ev: trace.NewEventLog("nars.reasoner", title)}
}

// Finish releases the underlying event log. Call once the reasoner this
// Recorder was attached to is done running.
func (r *Recorder) Finish() {
	r.ev.Finish()
}

// IsActive always reports true: a caller that wired this Recorder in
// wanted every event traced, unlike record.Null's permanent false.
func (r *Recorder) IsActive() bool { return true }

func (r *Recorder) OnCycleStart(clock int64) {
	r.ev.Printf("cycle %d start", clock)
}

func (r *Recorder) OnCycleEnd(clock int64) {
	r.ev.Printf("cycle %d end", clock)
}

func (r *Recorder) OnConceptNew(term string) {
	r.ev.Printf("concept new: %s", term)
}

func (r *Recorder) OnTaskAdd(task, reason string) {
	r.ev.Printf("task add [%s]: %s", reason, task)
}

// OnTaskRemove is reported through Errorf rather than Printf: a dropped
// task is the one admission event worth flagging red in /debug/requests
// without reading every line.
func (r *Recorder) OnTaskRemove(task, reason string) {
	r.ev.Errorf("task drop [%s]: %s", reason, task)
}

func (r *Recorder) Append(message string) {
	r.ev.Printf("%s", message)
}

var _ record.Recorder = (*Recorder)(nil)
