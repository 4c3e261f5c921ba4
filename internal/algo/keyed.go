package algo

import (
	"github.com/emirpasic/gods/trees/redblacktree"

	"cfsim/internal/sched"
)

// ordKey orders the runnable set of a keyed discipline. The primary value
// comes from the discipline (remaining work, nice level); arrival and id
// make the order total.
type ordKey struct {
	primary int64
	arrival int64
	id      sched.TaskID
}

func ordCmp(a, b any) int {
	ka, kb := a.(ordKey), b.(ordKey)
	switch {
	case ka.primary != kb.primary:
		if ka.primary < kb.primary {
			return -1
		}
		return 1
	case ka.arrival != kb.arrival:
		if ka.arrival < kb.arrival {
			return -1
		}
		return 1
	case ka.id != kb.id:
		if ka.id < kb.id {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// runKeyed is the shared loop behind the preemptive keyed disciplines:
// every quantum it runs the task with the smallest key, requeues it if work
// remains and then admits new arrivals, so arrivals take effect at quantum
// boundaries.
func runKeyed(specs []sched.TaskSpec, quantum int64, primary func(*sched.Task) int64) ([]sched.Event, error) {
	tasks, err := sched.NewTaskSet(specs)
	if err != nil {
		return nil, err
	}

	log := sched.NewEventLog()
	var clock sched.Clock
	rbt := redblacktree.NewWith(ordCmp)
	next := 0
	admit := func() {
		for next < len(tasks) && tasks[next].Arrival <= clock.Now() {
			t := tasks[next]
			rbt.Put(ordKey{primary(t), t.Arrival, t.ID}, t)
			next++
		}
	}

	for {
		if rbt.Empty() {
			if next >= len(tasks) {
				break
			}
			clock.AdvanceTo(tasks[next].Arrival)
			admit()
		}

		node := rbt.Left()
		t := node.Value.(*sched.Task)
		rbt.Remove(node.Key)

		granted := min(quantum, t.Remaining)
		start := clock.Now()
		clock.Advance(granted)
		t.Remaining -= granted

		outcome := sched.OutcomePreempted
		if t.Remaining == 0 {
			outcome = sched.OutcomeFinished
		}
		log.Append(sched.Event{Start: start, End: clock.Now(), ID: t.ID, Outcome: outcome})

		if outcome == sched.OutcomePreempted {
			rbt.Put(ordKey{primary(t), t.Arrival, t.ID}, t)
		}
		admit()
	}
	return log.Drain(), nil
}

// SJF preempts every quantum in favor of the task with the least remaining
// work, also known as shortest remaining time first.
type SJF struct {
	Quantum int64
}

func (SJF) Name() string { return "sjf" }

func (s SJF) Run(specs []sched.TaskSpec) ([]sched.Event, error) {
	return runKeyed(specs, s.Quantum, func(t *sched.Task) int64 { return t.Remaining })
}

// Priority preempts every quantum in favor of the task with the lowest nice
// value. Starvation of high-nice tasks is inherent, which is exactly the
// contrast the fair scheduler is meant to show.
type Priority struct {
	Quantum int64
}

func (Priority) Name() string { return "priority" }

func (p Priority) Run(specs []sched.TaskSpec) ([]sched.Event, error) {
	return runKeyed(specs, p.Quantum, func(t *sched.Task) int64 { return int64(t.Nice) })
}
