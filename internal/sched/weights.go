package sched

import (
	"errors"
	"fmt"
)

// Nice value bounds, matching the classic kernel range.
const (
	NiceMin = -20
	NiceMax = 19
)

// nice0Weight is the load weight of a nice-0 task. All vruntime deltas are
// normalized against it so a nice-0 task accrues vruntime 1:1 with runtime.
const nice0Weight = 1024

// ErrNiceOutOfRange is returned when a nice value falls outside [NiceMin, NiceMax].
var ErrNiceOutOfRange = errors.New("nice value out of range")

// niceToWeight maps nice levels -20..19 to load weights. Each step changes
// the weight by roughly 1.25x so one nice level shifts CPU share by ~10%.
var niceToWeight = [40]int64{
	/* -20 */ 88761, 71755, 56483, 46273, 36291,
	/* -15 */ 29154, 23254, 18705, 14949, 11916,
	/* -10 */ 9548, 7620, 6100, 4904, 3906,
	/*  -5 */ 3121, 2501, 1991, 1586, 1277,
	/*   0 */ 1024, 820, 655, 526, 423,
	/*   5 */ 335, 272, 215, 172, 137,
	/*  10 */ 110, 87, 70, 56, 45,
	/*  15 */ 36, 29, 23, 18, 15,
}

// WeightOf returns the load weight for the given nice value.
func WeightOf(nice int) (int64, error) {
	if nice < NiceMin || nice > NiceMax {
		return 0, fmt.Errorf("%w: %d (want %d..%d)", ErrNiceOutOfRange, nice, NiceMin, NiceMax)
	}
	return niceToWeight[nice-NiceMin], nil
}
