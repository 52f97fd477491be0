package mlfq

import (
	"fmt"

	"mlfq/proc"
	"mlfq/ticks"
)

// queue is one priority level: a packed array of handles plus its
// bookkeeping. Slots [0, size) are live and slots [size, cap) are nil.
// back is the insertion cursor and always equals size.
type queue struct {
	procs    []*proc.Proc
	size     int
	back     int
	maxTicks ticks.Tticks
}

func newQueue(nproc int) *queue {
	return &queue{procs: make([]*proc.Proc, nproc)}
}

func (q *queue) reset(maxTicks ticks.Tticks) {
	for i := range q.procs {
		q.procs[i] = nil
	}
	q.size = 0
	q.back = 0
	q.maxTicks = maxTicks
}

func (q *queue) full() bool {
	return q.back >= len(q.procs)
}

func (q *queue) pushBack(p *proc.Proc) {
	q.procs[q.back] = p
	q.back += 1
	q.size += 1
}

// removeAt deletes slot i and shifts the later entries down one.
func (q *queue) removeAt(i int) *proc.Proc {
	p := q.procs[i]
	copy(q.procs[i:q.size], q.procs[i+1:q.size])
	q.procs[q.size-1] = nil
	q.back -= 1
	q.size -= 1
	return p
}

func (q *queue) find(pid proc.Tpid) int {
	for i := 0; i < q.size; i++ {
		if q.procs[i].GetPid() == pid {
			return i
		}
	}
	return -1
}

func (q *queue) String() string {
	s := fmt.Sprintf("{sz %d q %d [", q.size, q.maxTicks)
	for i := 0; i < q.size; i++ {
		if i > 0 {
			s += " "
		}
		s += q.procs[i].GetPid().String()
	}
	return s + "]}"
}
