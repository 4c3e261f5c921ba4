package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTaskFromValidSpec(t *testing.T) {
	task, err := NewTask(TaskSpec{ID: 7, Nice: -5, Burst: 42, Arrival: 10})
	require.NoError(t, err)

	assert.Equal(t, TaskID(7), task.ID)
	assert.Equal(t, -5, task.Nice)
	assert.Equal(t, int64(3121), task.Weight)
	assert.Equal(t, int64(42), task.Burst)
	assert.Equal(t, int64(42), task.Remaining)
	assert.Equal(t, int64(10), task.Arrival)
	assert.Zero(t, task.Vruntime)
}

func TestNewTaskRejectsBadSpecs(t *testing.T) {
	cases := []struct {
		name string
		spec TaskSpec
		want error
	}{
		{"nice too low", TaskSpec{ID: 1, Nice: -21, Burst: 1}, ErrNiceOutOfRange},
		{"nice too high", TaskSpec{ID: 1, Nice: 20, Burst: 1}, ErrNiceOutOfRange},
		{"zero burst", TaskSpec{ID: 1, Burst: 0}, ErrInvalidBurst},
		{"negative burst", TaskSpec{ID: 1, Burst: -3}, ErrInvalidBurst},
		{"negative arrival", TaskSpec{ID: 1, Burst: 1, Arrival: -1}, ErrInvalidArrival},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTask(tc.spec)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewTaskSetRejectsDuplicateIDs(t *testing.T) {
	_, err := NewTaskSet([]TaskSpec{
		{ID: 1, Burst: 5},
		{ID: 2, Burst: 5},
		{ID: 1, Burst: 9},
	})
	require.ErrorIs(t, err, ErrDuplicateTaskID)
}

func TestNewTaskSetSortsByArrivalThenID(t *testing.T) {
	tasks, err := NewTaskSet([]TaskSpec{
		{ID: 3, Burst: 1, Arrival: 5},
		{ID: 1, Burst: 1, Arrival: 9},
		{ID: 2, Burst: 1, Arrival: 5},
	})
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	assert.Equal(t, TaskID(2), tasks[0].ID)
	assert.Equal(t, TaskID(3), tasks[1].ID)
	assert.Equal(t, TaskID(1), tasks[2].ID)
}

func TestNewTaskSetFailsFast(t *testing.T) {
	// WHEN one spec in the middle is invalid
	tasks, err := NewTaskSet([]TaskSpec{
		{ID: 1, Burst: 5},
		{ID: 2, Burst: 0},
		{ID: 3, Burst: 5},
	})

	// THEN the whole batch is rejected
	require.ErrorIs(t, err, ErrInvalidBurst)
	assert.Nil(t, tasks)
}
