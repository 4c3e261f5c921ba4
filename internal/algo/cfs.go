package algo

import "cfsim/internal/sched"

// CFS adapts the weighted-fair scheduler to the Algorithm interface.
type CFS struct {
	Config sched.Config
}

func (CFS) Name() string { return "cfs" }

func (c CFS) Run(specs []sched.TaskSpec) ([]sched.Event, error) {
	return sched.Simulate(c.Config, specs)
}
