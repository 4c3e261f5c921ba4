package algo

import "cfsim/internal/sched"

// FCFS runs tasks to completion in arrival order, no preemption.
type FCFS struct{}

func (FCFS) Name() string { return "fcfs" }

func (FCFS) Run(specs []sched.TaskSpec) ([]sched.Event, error) {
	tasks, err := sched.NewTaskSet(specs)
	if err != nil {
		return nil, err
	}

	log := sched.NewEventLog()
	var clock sched.Clock
	for _, t := range tasks {
		if t.Arrival > clock.Now() {
			clock.AdvanceTo(t.Arrival)
		}
		start := clock.Now()
		clock.Advance(t.Burst)
		log.Append(sched.Event{
			Start:   start,
			End:     clock.Now(),
			ID:      t.ID,
			Outcome: sched.OutcomeFinished,
		})
	}
	return log.Drain(), nil
}
