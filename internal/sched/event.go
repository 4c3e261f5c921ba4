// internal/sched/event.go

package sched

import "fmt"

// Outcome says why a slice ended.
type Outcome int

const (
	// OutcomePreempted means the task exhausted its slice with work left.
	OutcomePreempted Outcome = iota
	// OutcomeFinished means the task completed its burst within the slice.
	OutcomeFinished
)

func (o Outcome) String() string {
	switch o {
	case OutcomePreempted:
		return "preempted"
	case OutcomeFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Event records one scheduling decision: the task that ran, the half-open
// interval [Start, End) it occupied and its vruntime before and after.
type Event struct {
	Start          int64
	End            int64
	ID             TaskID
	VruntimeBefore float64
	VruntimeAfter  float64
	Outcome        Outcome
}

// EventLog is the append-only trace of a run. Entries never overlap and
// their start times never decrease; gaps between entries are idle time.
type EventLog struct {
	events []Event
}

// NewEventLog returns an empty log.
func NewEventLog() *EventLog {
	return &EventLog{}
}

// Append adds ev to the log. It panics when ev is malformed or would break
// the chronological order, since only scheduler bugs can produce that.
func (l *EventLog) Append(ev Event) {
	if ev.End < ev.Start {
		panic(fmt.Sprintf("sched: event for task %d ends at %d before it starts at %d", ev.ID, ev.End, ev.Start))
	}
	if n := len(l.events); n > 0 && ev.Start < l.events[n-1].End {
		panic(fmt.Sprintf("sched: event for task %d starts at %d inside previous event ending at %d",
			ev.ID, ev.Start, l.events[n-1].End))
	}
	l.events = append(l.events, ev)
}

// Len reports the number of recorded events.
func (l *EventLog) Len() int { return len(l.events) }

// Events returns a copy of the log so callers cannot disturb the trace.
func (l *EventLog) Events() []Event {
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// Drain hands over the recorded events and resets the log.
func (l *EventLog) Drain() []Event {
	out := l.events
	l.events = nil
	return out
}
