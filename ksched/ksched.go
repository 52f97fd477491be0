// Package ksched is the kernel's entry point to the MLFQ run queues.
// It serializes access to the queue manager and turns invariant
// violations reported by the queue manager into a fatal abort.
package ksched

import (
	"fmt"
	"sync"

	db "mlfq/debug"
	"mlfq/mlfq"
	"mlfq/proc"
	"mlfq/serr"
	"mlfq/ticks"
)

// Fatalf must not return in production; the default is db.DFatalf.
type Fatalf func(format string, v ...interface{})

type SchedOpts struct {
	fatalf Fatalf
}

type SchedOpt interface {
	Apply(*SchedOpts)
}

type withFatalf struct {
	f Fatalf
}

func (o withFatalf) Apply(opts *SchedOpts) {
	opts.fatalf = o.f
}

// WithFatalf replaces the abort primitive, e.g. with one that panics
// so tests can observe it.
func WithFatalf(f Fatalf) SchedOpt {
	return &withFatalf{f: f}
}

type Sched struct {
	sync.Mutex
	qm     *mlfq.QMgr
	fatalf Fatalf
}

func NewSched(nproc int, clk ticks.Clock, opts ...SchedOpt) *Sched {
	o := &SchedOpts{fatalf: db.DFatalf}
	for _, opt := range opts {
		opt.Apply(o)
	}
	return &Sched{
		qm:     mlfq.NewQMgr(nproc, clk),
		fatalf: o.fatalf,
	}
}

func (sd *Sched) fatal(op string, err *serr.Err) {
	db.DPrintf(db.KSCHED_ERR, "%v: %v", op, err)
	sd.fatalf("MLFQ: %v: %v", op, err.Code())
}

func (sd *Sched) InitQueue() {
	sd.Lock()
	defer sd.Unlock()

	sd.qm.Init()
}

func (sd *Sched) PushBack(p *proc.Proc, lvl proc.Tlevel) {
	sd.Lock()
	defer sd.Unlock()

	if err := sd.qm.Enqueue(p, lvl); err != nil {
		sd.fatal(fmt.Sprintf("PushBack %v lvl %v", p.GetPid(), lvl), err)
	}
}

// PopFront returns nil only if the abort primitive returned.
func (sd *Sched) PopFront(lvl proc.Tlevel) *proc.Proc {
	sd.Lock()
	defer sd.Unlock()

	p, err := sd.qm.DequeueFront(lvl)
	if err != nil {
		sd.fatal(fmt.Sprintf("PopFront lvl %v", lvl), err)
		return nil
	}
	return p
}

// RemoveQueue removes p from lvl if it is there and reports whether it
// was.
func (sd *Sched) RemoveQueue(p *proc.Proc, lvl proc.Tlevel) bool {
	sd.Lock()
	defer sd.Unlock()

	ok, err := sd.qm.Remove(p, lvl)
	if err != nil {
		sd.fatal(fmt.Sprintf("RemoveQueue %v lvl %v", p.GetPid(), lvl), err)
		return false
	}
	return ok
}

func (sd *Sched) QLen(lvl proc.Tlevel) int {
	sd.Lock()
	defer sd.Unlock()

	n, err := sd.qm.Len(lvl)
	if err != nil {
		sd.fatal(fmt.Sprintf("QLen lvl %v", lvl), err)
	}
	return n
}

func (sd *Sched) MaxTicks(lvl proc.Tlevel) ticks.Tticks {
	sd.Lock()
	defer sd.Unlock()

	mt, err := sd.qm.MaxTicks(lvl)
	if err != nil {
		sd.fatal(fmt.Sprintf("MaxTicks lvl %v", lvl), err)
	}
	return mt
}

// Highest returns the highest-priority level with a queued process.
func (sd *Sched) Highest() (proc.Tlevel, bool) {
	sd.Lock()
	defer sd.Unlock()

	for lvl := proc.Tlevel(0); lvl < mlfq.NLEVEL; lvl++ {
		if _, ok := sd.qm.Front(lvl); ok {
			return lvl, true
		}
	}
	return proc.NOT_QUEUED, false
}

// PopHighest dequeues the front of the highest-priority non-empty
// level, holding the lock across the choice and the removal.
func (sd *Sched) PopHighest() (*proc.Proc, bool) {
	sd.Lock()
	defer sd.Unlock()

	for lvl := proc.Tlevel(0); lvl < mlfq.NLEVEL; lvl++ {
		if _, ok := sd.qm.Front(lvl); !ok {
			continue
		}
		p, err := sd.qm.DequeueFront(lvl)
		if err != nil {
			sd.fatal(fmt.Sprintf("PopHighest lvl %v", lvl), err)
			return nil, false
		}
		return p, true
	}
	return nil, false
}

func (sd *Sched) Iter(lvl proc.Tlevel, f func(*proc.Proc) bool) {
	sd.Lock()
	defer sd.Unlock()

	sd.qm.Iter(lvl, f)
}

func (sd *Sched) String() string {
	sd.Lock()
	defer sd.Unlock()

	return sd.qm.String()
}
