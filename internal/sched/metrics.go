package sched

import "gonum.org/v1/gonum/stat"

// TaskTimes collects the per-task timings derived from a completed trace.
// Waiting is time spent runnable but off the CPU; Turnaround is arrival to
// completion, so Turnaround = Waiting + Burst always holds.
type TaskTimes struct {
	ID         TaskID
	Nice       int
	Arrival    int64
	Burst      int64
	Completion int64
	Waiting    int64
	Turnaround int64
}

// Summary aggregates a completed run.
type Summary struct {
	Tasks         []TaskTimes
	AvgWaiting    float64
	AvgTurnaround float64
	WaitingStdDev float64 // population stddev, a fairness signal across tasks
	Makespan      int64
}

// Summarize derives per-task and aggregate timings from a run-to-completion
// trace. Tasks appear in the order given by specs.
func Summarize(specs []TaskSpec, events []Event) Summary {
	completion := make(map[TaskID]int64, len(specs))
	for _, ev := range events {
		completion[ev.ID] = ev.End
	}

	sum := Summary{Tasks: make([]TaskTimes, 0, len(specs))}
	waits := make([]float64, 0, len(specs))
	turnarounds := make([]float64, 0, len(specs))
	for _, spec := range specs {
		done := completion[spec.ID]
		tt := TaskTimes{
			ID:         spec.ID,
			Nice:       spec.Nice,
			Arrival:    spec.Arrival,
			Burst:      spec.Burst,
			Completion: done,
			Turnaround: done - spec.Arrival,
			Waiting:    done - spec.Arrival - spec.Burst,
		}
		sum.Tasks = append(sum.Tasks, tt)
		waits = append(waits, float64(tt.Waiting))
		turnarounds = append(turnarounds, float64(tt.Turnaround))
	}

	if n := len(events); n > 0 {
		sum.Makespan = events[n-1].End
	}
	if len(waits) > 0 {
		sum.AvgWaiting = stat.Mean(waits, nil)
		sum.AvgTurnaround = stat.Mean(turnarounds, nil)
		sum.WaitingStdDev = stat.PopStdDev(waits, nil)
	}
	return sum
}
