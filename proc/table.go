package proc

import (
	"fmt"

	db "mlfq/debug"
	"mlfq/serr"
)

// ProcTable is a fixed array of nproc process slots, allocated once.
type ProcTable struct {
	procs []*Proc
	nused int
}

func NewProcTable(nproc int) *ProcTable {
	return &ProcTable{procs: make([]*Proc, nproc)}
}

// Alloc places a new process in the lowest free slot. An empty name is
// replaced by a random one.
func (pt *ProcTable) Alloc(name string) (*Proc, *serr.Err) {
	if name == "" {
		name = GenName()
	}
	for i, p := range pt.procs {
		if p == nil {
			p = newProc(Tpid(i), name)
			pt.procs[i] = p
			pt.nused += 1
			db.DPrintf(db.PROC, "Alloc %v", p)
			return p, nil
		}
	}
	db.DPrintf(db.PROC_ERR, "Alloc %v: table full (%d)", name, len(pt.procs))
	return nil, serr.NewErr(serr.TErrFull, name)
}

func (pt *ProcTable) Free(pid Tpid) *serr.Err {
	if pid < 0 || int(pid) >= len(pt.procs) || pt.procs[pid] == nil {
		return serr.NewErr(serr.TErrNotfound, pid)
	}
	db.DPrintf(db.PROC, "Free %v", pt.procs[pid])
	pt.procs[pid] = nil
	pt.nused -= 1
	return nil
}

func (pt *ProcTable) Lookup(pid Tpid) (*Proc, bool) {
	if pid < 0 || int(pid) >= len(pt.procs) {
		return nil, false
	}
	p := pt.procs[pid]
	return p, p != nil
}

// Len returns the number of allocated slots.
func (pt *ProcTable) Len() int {
	return pt.nused
}

func (pt *ProcTable) NProc() int {
	return len(pt.procs)
}

func (pt *ProcTable) String() string {
	return fmt.Sprintf("{nproc %d used %d}", len(pt.procs), pt.nused)
}
