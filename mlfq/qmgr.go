// Package mlfq implements the run queues of a multi-level feedback
// queue scheduler: NLEVEL fixed-capacity FIFO levels of process
// handles, and the per-handle bookkeeping stamped on enqueue.
//
// QMgr does no locking. Callers must serialize all calls, as
// ksched.Sched does.
package mlfq

import (
	"fmt"

	db "mlfq/debug"
	"mlfq/proc"
	"mlfq/serr"
	"mlfq/ticks"
)

const NLEVEL = 5

type QMgr struct {
	clk ticks.Clock
	qs  [NLEVEL]*queue
}

// NewQMgr allocates NLEVEL levels of nproc slots each and initializes
// them.
func NewQMgr(nproc int, clk ticks.Clock) *QMgr {
	qm := &QMgr{clk: clk}
	for i := range qm.qs {
		qm.qs[i] = newQueue(nproc)
	}
	qm.Init()
	return qm
}

// Init empties every level and sets level i's quantum to 2^i ticks.
// Handles queued before the call keep their InQueue flag.
func (qm *QMgr) Init() {
	for i, q := range qm.qs {
		q.reset(ticks.Tticks(1) << i)
	}
	db.DPrintf(db.MLFQ, "Init nproc %d", qm.Cap())
}

func (qm *QMgr) getQueue(lvl proc.Tlevel) (*queue, *serr.Err) {
	if lvl < 0 || lvl >= NLEVEL {
		return nil, serr.NewErr(serr.TErrBadLevel, lvl)
	}
	return qm.qs[lvl], nil
}

func (qm *QMgr) isQueued(p *proc.Proc) (proc.Tlevel, bool) {
	for i, q := range qm.qs {
		if q.find(p.GetPid()) >= 0 {
			return proc.Tlevel(i), true
		}
	}
	return proc.NOT_QUEUED, false
}

// Enqueue appends p to the tail of level lvl and resets its
// scheduling bookkeeping. Nothing is modified on error.
func (qm *QMgr) Enqueue(p *proc.Proc, lvl proc.Tlevel) *serr.Err {
	q, err := qm.getQueue(lvl)
	if err != nil {
		db.DPrintf(db.MLFQ_ERR, "Enqueue %v: %v", p.GetPid(), err)
		return err
	}
	if q.full() {
		db.DPrintf(db.MLFQ_ERR, "Enqueue %v: level %v full", p.GetPid(), lvl)
		return serr.NewErr(serr.TErrFull, lvl)
	}
	if l, ok := qm.isQueued(p); ok {
		db.DPrintf(db.MLFQ_ERR, "Enqueue %v: already in level %v", p.GetPid(), l)
		return serr.NewErr(serr.TErrExists, p.GetPid())
	}
	q.pushBack(p)
	p.QueuePos = lvl
	p.CurWaitTime = 0
	p.EnteredQueue = qm.clk.Now()
	p.TicksUsed = 0
	p.InQueue = true
	db.DPrintf(db.MLFQ, "Enqueue %v lvl %v sz %d", p.GetPid(), lvl, q.size)
	return nil
}

// DequeueFront removes and returns the oldest handle in level lvl.
// Only InQueue is cleared; the caller decides the handle's next level.
func (qm *QMgr) DequeueFront(lvl proc.Tlevel) (*proc.Proc, *serr.Err) {
	q, err := qm.getQueue(lvl)
	if err != nil {
		db.DPrintf(db.MLFQ_ERR, "DequeueFront: %v", err)
		return nil, err
	}
	if q.size <= 0 {
		db.DPrintf(db.MLFQ_ERR, "DequeueFront: level %v empty", lvl)
		return nil, serr.NewErr(serr.TErrEmpty, lvl)
	}
	p := q.removeAt(0)
	p.InQueue = false
	db.DPrintf(db.MLFQ, "DequeueFront %v lvl %v sz %d", p.GetPid(), lvl, q.size)
	return p, nil
}

// Remove takes p out of level lvl, wherever it sits. Removing a handle
// that is not in lvl is not an error and returns false.
func (qm *QMgr) Remove(p *proc.Proc, lvl proc.Tlevel) (bool, *serr.Err) {
	q, err := qm.getQueue(lvl)
	if err != nil {
		db.DPrintf(db.MLFQ_ERR, "Remove %v: %v", p.GetPid(), err)
		return false, err
	}
	i := q.find(p.GetPid())
	if i < 0 {
		db.DPrintf(db.MLFQ, "Remove %v lvl %v: not present", p.GetPid(), lvl)
		return false, nil
	}
	q.removeAt(i).InQueue = false
	db.DPrintf(db.MLFQ, "Remove %v lvl %v pos %d sz %d", p.GetPid(), lvl, i, q.size)
	return true, nil
}

func (qm *QMgr) Len(lvl proc.Tlevel) (int, *serr.Err) {
	q, err := qm.getQueue(lvl)
	if err != nil {
		return 0, err
	}
	return q.size, nil
}

// Cap returns the capacity of each level.
func (qm *QMgr) Cap() int {
	return len(qm.qs[0].procs)
}

func (qm *QMgr) MaxTicks(lvl proc.Tlevel) (ticks.Tticks, *serr.Err) {
	q, err := qm.getQueue(lvl)
	if err != nil {
		return 0, err
	}
	return q.maxTicks, nil
}

func (qm *QMgr) Front(lvl proc.Tlevel) (*proc.Proc, bool) {
	q, err := qm.getQueue(lvl)
	if err != nil || q.size == 0 {
		return nil, false
	}
	return q.procs[0], true
}

// Iter calls f on each handle in lvl in FIFO order until f returns
// false. f must not enqueue or remove.
func (qm *QMgr) Iter(lvl proc.Tlevel, f func(*proc.Proc) bool) {
	q, err := qm.getQueue(lvl)
	if err != nil {
		return
	}
	for i := 0; i < q.size; i++ {
		if !f(q.procs[i]) {
			return
		}
	}
}

func (qm *QMgr) Pids(lvl proc.Tlevel) []proc.Tpid {
	pids := make([]proc.Tpid, 0)
	qm.Iter(lvl, func(p *proc.Proc) bool {
		pids = append(pids, p.GetPid())
		return true
	})
	return pids
}

func (qm *QMgr) String() string {
	s := "["
	for i, q := range qm.qs {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%d: %v", i, q)
	}
	return s + "]"
}
