package algo

import "cfsim/internal/sched"

// RoundRobin cycles through runnable tasks in FIFO order, granting each a
// fixed quantum. A preempted task rejoins the queue ahead of tasks that
// arrived during its slice.
type RoundRobin struct {
	Quantum int64
}

func (RoundRobin) Name() string { return "rr" }

func (r RoundRobin) Run(specs []sched.TaskSpec) ([]sched.Event, error) {
	tasks, err := sched.NewTaskSet(specs)
	if err != nil {
		return nil, err
	}

	log := sched.NewEventLog()
	var clock sched.Clock
	queue := make([]*sched.Task, 0, len(tasks))
	next := 0
	admit := func() {
		for next < len(tasks) && tasks[next].Arrival <= clock.Now() {
			queue = append(queue, tasks[next])
			next++
		}
	}

	for {
		if len(queue) == 0 {
			if next >= len(tasks) {
				break
			}
			clock.AdvanceTo(tasks[next].Arrival)
			admit()
		}

		t := queue[0]
		queue = queue[1:]

		granted := min(r.Quantum, t.Remaining)
		start := clock.Now()
		clock.Advance(granted)
		t.Remaining -= granted

		outcome := sched.OutcomePreempted
		if t.Remaining == 0 {
			outcome = sched.OutcomeFinished
		}
		log.Append(sched.Event{Start: start, End: clock.Now(), ID: t.ID, Outcome: outcome})

		if outcome == sched.OutcomePreempted {
			queue = append(queue, t)
		}
		admit()
	}
	return log.Drain(), nil
}
