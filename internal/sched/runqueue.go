// internal/sched/runqueue.go

package sched

import (
	"fmt"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// nodeKey orders the run queue: lowest vruntime first, task ID as the
// tie-break so equal-vruntime tasks still have one fixed order.
type nodeKey struct {
	vruntime float64
	id       TaskID
}

func cmp(a, b any) int {
	ka, kb := a.(nodeKey), b.(nodeKey)
	switch {
	case ka.vruntime < kb.vruntime:
		return -1
	case ka.vruntime > kb.vruntime:
		return 1
	case ka.id < kb.id:
		return -1
	case ka.id > kb.id:
		return 1
	default:
		return 0
	}
}

// RunQueue holds the runnable tasks in a red-black tree keyed by
// (vruntime, id), so peek and pop of the fairest task stay O(log n).
// A task's vruntime must not change while it is queued; remove it,
// update it, reinsert it.
type RunQueue struct {
	rbt    *redblacktree.Tree
	queued map[TaskID]struct{}
}

// NewRunQueue returns an empty queue.
func NewRunQueue() *RunQueue {
	return &RunQueue{
		rbt:    redblacktree.NewWith(cmp),
		queued: make(map[TaskID]struct{}),
	}
}

// Insert adds a runnable task. Inserting a task that is already queued is
// a scheduler bug, so it panics rather than silently replacing the entry.
func (q *RunQueue) Insert(t *Task) {
	if _, dup := q.queued[t.ID]; dup {
		panic(fmt.Sprintf("sched: task %d inserted twice into run queue", t.ID))
	}
	q.rbt.Put(nodeKey{t.Vruntime, t.ID}, t)
	q.queued[t.ID] = struct{}{}
}

// PeekMin returns the task with the lowest (vruntime, id) without removing
// it, or nil when the queue is empty.
func (q *RunQueue) PeekMin() *Task {
	node := q.rbt.Left()
	if node == nil {
		return nil
	}
	return node.Value.(*Task)
}

// PopMin removes and returns the task with the lowest (vruntime, id).
// Popping an empty queue panics.
func (q *RunQueue) PopMin() *Task {
	node := q.rbt.Left()
	if node == nil {
		panic("sched: pop from empty run queue")
	}
	t := node.Value.(*Task)
	q.rbt.Remove(node.Key)
	delete(q.queued, t.ID)
	return t
}

// Len reports how many tasks are queued.
func (q *RunQueue) Len() int { return q.rbt.Size() }

// IsEmpty reports whether no tasks are queued.
func (q *RunQueue) IsEmpty() bool { return q.rbt.Empty() }
