package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTask(t *testing.T, id TaskID, vruntime float64) *Task {
	t.Helper()
	task, err := NewTask(TaskSpec{ID: id, Burst: 1})
	require.NoError(t, err)
	task.Vruntime = vruntime
	return task
}

func TestRunQueuePopsLowestVruntimeFirst(t *testing.T) {
	q := NewRunQueue()
	q.Insert(mustTask(t, 1, 3.5))
	q.Insert(mustTask(t, 2, 1.0))
	q.Insert(mustTask(t, 3, 2.25))

	assert.Equal(t, 3, q.Len())
	assert.Equal(t, TaskID(2), q.PopMin().ID)
	assert.Equal(t, TaskID(3), q.PopMin().ID)
	assert.Equal(t, TaskID(1), q.PopMin().ID)
	assert.True(t, q.IsEmpty())
}

func TestRunQueueBreaksVruntimeTiesByID(t *testing.T) {
	q := NewRunQueue()
	q.Insert(mustTask(t, 9, 1.0))
	q.Insert(mustTask(t, 4, 1.0))
	q.Insert(mustTask(t, 7, 1.0))

	assert.Equal(t, TaskID(4), q.PopMin().ID)
	assert.Equal(t, TaskID(7), q.PopMin().ID)
	assert.Equal(t, TaskID(9), q.PopMin().ID)
}

func TestRunQueuePeekDoesNotRemove(t *testing.T) {
	q := NewRunQueue()
	assert.Nil(t, q.PeekMin())

	q.Insert(mustTask(t, 1, 2.0))
	require.NotNil(t, q.PeekMin())
	assert.Equal(t, TaskID(1), q.PeekMin().ID)
	assert.Equal(t, 1, q.Len())
}

func TestRunQueueReinsertAfterUpdateReorders(t *testing.T) {
	q := NewRunQueue()
	q.Insert(mustTask(t, 1, 0))
	q.Insert(mustTask(t, 2, 1.0))

	// pop the leader, charge it some vruntime, put it back
	lead := q.PopMin()
	require.Equal(t, TaskID(1), lead.ID)
	lead.Vruntime = 5.0
	q.Insert(lead)

	assert.Equal(t, TaskID(2), q.PopMin().ID)
	assert.Equal(t, TaskID(1), q.PopMin().ID)
}

func TestRunQueuePanicsOnMisuse(t *testing.T) {
	q := NewRunQueue()
	assert.Panics(t, func() { q.PopMin() }, "pop from empty queue")

	task := mustTask(t, 1, 0)
	q.Insert(task)
	assert.Panics(t, func() { q.Insert(task) }, "double insert")

	// same id under a different vruntime is still a double insert
	clone := mustTask(t, 1, 9.0)
	assert.Panics(t, func() { q.Insert(clone) })
}
