// Package algo bundles classic scheduling disciplines behind one interface
// so runs over the same task set can be compared side by side.
package algo

import (
	"errors"
	"fmt"

	"cfsim/internal/sched"
)

// DefaultQuantum is the slice length used by the quantum-driven disciplines
// when the caller does not pick one.
const DefaultQuantum = 4

// ErrUnknownAlgorithm is returned by New for names it does not recognize.
var ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")

// Algorithm runs a task set to completion and returns the execution trace.
// Implementations must be deterministic: same specs, same trace.
type Algorithm interface {
	Name() string
	Run(specs []sched.TaskSpec) ([]sched.Event, error)
}

// Options carries the per-discipline tuning knobs. Zero values fall back to
// defaults.
type Options struct {
	Quantum int64        // slice length for rr, sjf and priority
	Fair    sched.Config // latency tuning for cfs
}

// New builds the named algorithm. Recognized names are listed by Names.
func New(name string, opts Options) (Algorithm, error) {
	quantum := opts.Quantum
	if quantum <= 0 {
		quantum = DefaultQuantum
	}

	switch name {
	case "", "cfs":
		return CFS{Config: opts.Fair}, nil
	case "fcfs":
		return FCFS{}, nil
	case "rr":
		return RoundRobin{Quantum: quantum}, nil
	case "sjf":
		return SJF{Quantum: quantum}, nil
	case "priority":
		return Priority{Quantum: quantum}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Names lists every algorithm New accepts, in display order.
func Names() []string {
	return []string{"cfs", "fcfs", "rr", "sjf", "priority"}
}
