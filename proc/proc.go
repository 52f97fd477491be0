package proc

import (
	"fmt"

	"mlfq/ticks"
)

// Tlevel is a priority level; 0 is the highest priority.
type Tlevel int

const NOT_QUEUED Tlevel = -1

func (l Tlevel) String() string {
	if l == NOT_QUEUED {
		return "none"
	}
	return fmt.Sprintf("%d", int(l))
}

// Proc is a process handle. The process table owns it; the queue
// manager is the only writer of the scheduling fields below Name.
type Proc struct {
	Pid  Tpid
	Name string

	QueuePos     Tlevel
	CurWaitTime  ticks.Tticks
	EnteredQueue ticks.Tticks
	TicksUsed    ticks.Tticks
	InQueue      bool
}

func newProc(pid Tpid, name string) *Proc {
	return &Proc{
		Pid:      pid,
		Name:     name,
		QueuePos: NOT_QUEUED,
	}
}

func (p *Proc) GetPid() Tpid {
	return p.Pid
}

func (p *Proc) GetName() string {
	return p.Name
}

func (p *Proc) String() string {
	return fmt.Sprintf("{pid %v name %v q %v wait %d entered %d used %d inq %v}",
		p.Pid, p.Name, p.QueuePos, p.CurWaitTime, p.EnteredQueue, p.TicksUsed, p.InQueue)
}
