// Package workload produces task sets for the simulator, either parsed
// from CSV or generated from a seeded PRNG.
package workload

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"strconv"

	"cfsim/internal/sched"
)

// FromCSV parses "id,nice,burst,arrival" rows into task specs. The arrival
// column may be omitted and defaults to 0; a header row is tolerated.
// Values are parsed only; range checks happen when the scheduler is built.
func FromCSV(r io.Reader) ([]sched.TaskSpec, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var specs []sched.TaskSpec
	for row := 1; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			return specs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		if len(record) < 3 || len(record) > 4 {
			return nil, fmt.Errorf("row %d: want 3 or 4 columns, got %d", row, len(record))
		}

		id, err := strconv.ParseUint(record[0], 10, 64)
		if err != nil {
			if row == 1 {
				continue // header row
			}
			return nil, fmt.Errorf("row %d: bad id %q: %w", row, record[0], err)
		}
		nice, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad nice %q: %w", row, record[1], err)
		}
		burst, err := strconv.ParseInt(record[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad burst %q: %w", row, record[2], err)
		}
		var arrival int64
		if len(record) == 4 {
			arrival, err = strconv.ParseInt(record[3], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: bad arrival %q: %w", row, record[3], err)
			}
		}

		specs = append(specs, sched.TaskSpec{
			ID:      sched.TaskID(id),
			Nice:    nice,
			Burst:   burst,
			Arrival: arrival,
		})
	}
}

// RandomConfig bounds the generated task set. Nice values are drawn from
// [NiceLow, NiceHigh], arrivals from [0, MaxArrival], bursts from
// [1, MaxBurst].
type RandomConfig struct {
	Tasks      int
	Seed       int64
	MaxArrival int64
	MaxBurst   int64
	NiceLow    int
	NiceHigh   int
}

// Random generates a reproducible task set: same config, same specs. IDs
// run from 1 to Tasks so every spec is valid by construction.
func Random(cfg RandomConfig) []sched.TaskSpec {
	cfg = cfg.sanitized()
	rng := rand.New(rand.NewSource(cfg.Seed))

	specs := make([]sched.TaskSpec, 0, cfg.Tasks)
	for i := 1; i <= cfg.Tasks; i++ {
		specs = append(specs, sched.TaskSpec{
			ID:      sched.TaskID(i),
			Nice:    cfg.NiceLow + rng.Intn(cfg.NiceHigh-cfg.NiceLow+1),
			Burst:   1 + rng.Int63n(cfg.MaxBurst),
			Arrival: rng.Int63n(cfg.MaxArrival + 1),
		})
	}
	return specs
}

// sanitized clamps the bounds into usable territory, mirroring how the
// scheduler config treats nonsense values.
func (c RandomConfig) sanitized() RandomConfig {
	if c.Tasks < 0 {
		c.Tasks = 0
	}
	if c.MaxArrival < 0 {
		c.MaxArrival = 0
	}
	if c.MaxBurst < 1 {
		c.MaxBurst = 1
	}
	c.NiceLow = min(max(c.NiceLow, sched.NiceMin), sched.NiceMax)
	c.NiceHigh = min(max(c.NiceHigh, sched.NiceMin), sched.NiceMax)
	if c.NiceHigh < c.NiceLow {
		c.NiceHigh = c.NiceLow
	}
	return c
}
