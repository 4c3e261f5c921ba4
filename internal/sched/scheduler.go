// internal/sched/scheduler.go

// Package sched implements a deterministic, discrete-time simulation of a
// completely fair scheduler on a single core. Tasks carry a nice level that
// maps to a load weight; the scheduler always runs the task with the lowest
// weight-normalized vruntime and sizes slices so every runnable task gets on
// the CPU within the target latency window.
package sched

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Scheduler owns the simulated clock, the run queue and the not-yet-arrived
// tasks of one run. It is not safe for concurrent use; drive it from a
// single goroutine.
type Scheduler struct {
	cfg         Config
	clock       Clock
	queue       *RunQueue
	pending     []*Task // sorted by (arrival, id); pending[next:] not yet admitted
	next        int
	totalWeight int64 // sum of weights of queued tasks
	trace       *EventLog
}

// New validates the specs and returns a scheduler positioned at time zero
// with nothing admitted yet.
func New(cfg Config, specs []TaskSpec) (*Scheduler, error) {
	tasks, err := NewTaskSet(specs)
	if err != nil {
		return nil, err
	}

	return &Scheduler{
		cfg:     cfg.sanitized(),
		queue:   NewRunQueue(),
		pending: tasks,
		trace:   NewEventLog(),
	}, nil
}

// Now returns the current simulated time.
func (s *Scheduler) Now() int64 { return s.clock.Now() }

// Trace exposes the event log accumulated so far.
func (s *Scheduler) Trace() *EventLog { return s.trace }

// Done reports whether every task has been admitted and run to completion.
func (s *Scheduler) Done() bool {
	return s.queue.IsEmpty() && s.next >= len(s.pending)
}

// Step makes exactly one scheduling decision: pick the fairest task, run it
// for one slice, account the time and requeue or retire it. It returns
// false without touching anything once no work remains.
func (s *Scheduler) Step() bool {
	if s.queue.IsEmpty() {
		if s.next >= len(s.pending) {
			return false
		}
		// Idle: jump straight to the next arrival.
		s.clock.AdvanceTo(s.pending[s.next].Arrival)
		s.admit()
	}

	t := s.queue.PopMin()
	granted := s.timeslice(t)

	start := s.clock.Now()
	s.clock.Advance(granted)

	before := t.Vruntime
	t.Vruntime += float64(granted) * nice0Weight / float64(t.Weight)
	t.Remaining -= granted

	outcome := OutcomePreempted
	if t.Remaining == 0 {
		outcome = OutcomeFinished
	}
	s.trace.Append(Event{
		Start:          start,
		End:            s.clock.Now(),
		ID:             t.ID,
		VruntimeBefore: before,
		VruntimeAfter:  t.Vruntime,
		Outcome:        outcome,
	})
	logrus.Debugf("[t=%06d] task %04d ran %d units, vruntime %07.4f -> %07.4f (%s)",
		s.clock.Now(), t.ID, granted, before, t.Vruntime, outcome)

	if outcome == OutcomeFinished {
		s.totalWeight -= t.Weight
	} else {
		s.queue.Insert(t)
	}

	s.admit()
	return true
}

// Run steps the scheduler until all tasks finish or ctx is cancelled.
// Cancellation is only observed between decisions, never mid-slice.
func (s *Scheduler) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !s.Step() {
			return nil
		}
	}
}

// Simulate runs a whole task set to completion and returns its trace.
func Simulate(cfg Config, specs []TaskSpec) ([]Event, error) {
	s, err := New(cfg, specs)
	if err != nil {
		return nil, err
	}
	if err := s.Run(context.Background()); err != nil {
		return nil, err
	}
	return s.trace.Drain(), nil
}

// timeslice sizes the next slice for t: a weight-proportional share of the
// target latency, floored at the minimum granularity and capped by the work
// the task has left.
func (s *Scheduler) timeslice(t *Task) int64 {
	ideal := s.cfg.TargetLatency * t.Weight / s.totalWeight
	slice := max(ideal, s.cfg.MinGranularity)
	return min(slice, t.Remaining)
}

// admit moves every pending task whose arrival time has come onto the run
// queue. New tasks start at the queue's minimum vruntime (zero when idle)
// so they compete fairly instead of monopolizing the CPU with a stale zero.
func (s *Scheduler) admit() {
	for s.next < len(s.pending) && s.pending[s.next].Arrival <= s.clock.Now() {
		t := s.pending[s.next]
		if minTask := s.queue.PeekMin(); minTask != nil {
			t.Vruntime = minTask.Vruntime
		}
		s.queue.Insert(t)
		s.totalWeight += t.Weight
		s.next++
		logrus.Debugf("[t=%06d] task %04d admitted (nice %d, burst %d, vruntime %07.4f)",
			s.clock.Now(), t.ID, t.Nice, t.Burst, t.Vruntime)
	}
}
