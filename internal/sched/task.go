package sched

import (
	"errors"
	"fmt"
	"sort"
)

// TaskID uniquely identifies a task in the scheduler.
type TaskID uint64

// Validation errors reported when a task spec is rejected at construction.
var (
	ErrInvalidBurst    = errors.New("burst must be positive")
	ErrInvalidArrival  = errors.New("arrival must not be negative")
	ErrDuplicateTaskID = errors.New("duplicate task id")
)

// TaskSpec is the immutable description of one task as supplied by the
// caller: who it is, how nice it is, how much CPU it wants and when it
// shows up.
type TaskSpec struct {
	ID      TaskID
	Nice    int
	Burst   int64
	Arrival int64
}

// Task is the scheduler's mutable view of a spec. Vruntime and Remaining
// change as the task runs; everything else is fixed for the whole run.
type Task struct {
	ID        TaskID
	Nice      int
	Weight    int64
	Arrival   int64
	Burst     int64
	Remaining int64
	Vruntime  float64
}

// NewTask validates a spec and returns a runnable task with zeroed
// vruntime. The real starting vruntime is assigned at admission time.
func NewTask(spec TaskSpec) (*Task, error) {
	w, err := WeightOf(spec.Nice)
	if err != nil {
		return nil, fmt.Errorf("task %d: %w", spec.ID, err)
	}
	if spec.Burst <= 0 {
		return nil, fmt.Errorf("task %d: %w (got %d)", spec.ID, ErrInvalidBurst, spec.Burst)
	}
	if spec.Arrival < 0 {
		return nil, fmt.Errorf("task %d: %w (got %d)", spec.ID, ErrInvalidArrival, spec.Arrival)
	}

	return &Task{
		ID:        spec.ID,
		Nice:      spec.Nice,
		Weight:    w,
		Arrival:   spec.Arrival,
		Burst:     spec.Burst,
		Remaining: spec.Burst,
	}, nil
}

// NewTaskSet validates every spec, rejects duplicate IDs and returns the
// tasks sorted by (arrival, id). The first invalid spec aborts the whole
// batch.
func NewTaskSet(specs []TaskSpec) ([]*Task, error) {
	tasks := make([]*Task, 0, len(specs))
	seen := make(map[TaskID]struct{}, len(specs))
	for _, spec := range specs {
		if _, dup := seen[spec.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateTaskID, spec.ID)
		}
		seen[spec.ID] = struct{}{}

		t, err := NewTask(spec)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	sortTasksByArrival(tasks)
	return tasks, nil
}

// sortTasksByArrival orders tasks by arrival time, breaking ties by ID so
// admission order is total and reproducible.
func sortTasksByArrival(tasks []*Task) {
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].Arrival != tasks[j].Arrival {
			return tasks[i].Arrival < tasks[j].Arrival
		}
		return tasks[i].ID < tasks[j].ID
	})
}
