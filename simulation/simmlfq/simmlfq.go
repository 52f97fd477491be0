// Package simmlfq drives the MLFQ run queues with a synthetic,
// tick-by-tick workload: Poisson arrivals, uniform service demand,
// and demotion by one level when a process uses up its quantum.
// There is no aging boost.
package simmlfq

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	db "mlfq/debug"
	"mlfq/ksched"
	"mlfq/mlfq"
	"mlfq/param"
	"mlfq/proc"
	"mlfq/ticks"
)

type World struct {
	p       *param.Param
	clk     *ticks.Ticker
	pt      *proc.ProcTable
	sd      *ksched.Sched
	rand    *rand.Rand
	poisson *distuv.Poisson
	running *proc.Proc
	demand  []ticks.Tticks // remaining service, indexed by pid
	st      *Stats
}

func NewWorld(p *param.Param, opts ...ksched.SchedOpt) *World {
	clk := ticks.NewTicker()
	src := rand.NewSource(p.Sim.SEED)
	w := &World{
		p:       p,
		clk:     clk,
		pt:      proc.NewProcTable(p.NPROC),
		sd:      ksched.NewSched(p.NPROC, clk, opts...),
		rand:    rand.New(src),
		poisson: &distuv.Poisson{Lambda: p.Sim.ARRIVAL_RATE, Src: src},
		demand:  make([]ticks.Tticks, p.NPROC),
		st:      newStats(),
	}
	return w
}

func (w *World) String() string {
	return fmt.Sprintf("{t %d running %v pt %v q %v}", w.clk.Now(), w.running, w.pt, w.sd)
}

func (w *World) uniform() ticks.Tticks {
	return ticks.Tticks(w.rand.Intn(w.p.Sim.MAX_SERVICE_TICKS) + 1)
}

func (w *World) genLoad() {
	n := int(w.poisson.Rand())
	for i := 0; i < n; i++ {
		p, err := w.pt.Alloc("")
		if err != nil {
			w.st.NReject += 1
			db.DPrintf(db.SIM, "Reject arrival: %v", err)
			continue
		}
		w.demand[p.GetPid()] = w.uniform()
		w.st.NSpawn += 1
		w.sd.PushBack(p, 0)
	}
}

// account charges the running process for one tick and either exits,
// demotes, or keeps running it.
func (w *World) account() {
	p := w.running
	if p == nil {
		return
	}
	p.TicksUsed += 1
	w.demand[p.GetPid()] -= 1
	if w.demand[p.GetPid()] == 0 {
		db.DPrintf(db.SIM, "Exit %v", p)
		w.running = nil
		w.st.NExit += 1
		if err := w.pt.Free(p.GetPid()); err != nil {
			db.DFatalf("Free %v err %v", p, err)
		}
		return
	}
	if p.TicksUsed >= w.sd.MaxTicks(p.QueuePos) {
		lvl := p.QueuePos
		if lvl < mlfq.NLEVEL-1 {
			lvl += 1
			w.st.NDemote += 1
		}
		db.DPrintf(db.SIM, "Quantum expired %v -> lvl %v", p, lvl)
		w.running = nil
		w.sd.PushBack(p, lvl)
	}
}

func (w *World) age() {
	for lvl := proc.Tlevel(0); lvl < mlfq.NLEVEL; lvl++ {
		w.sd.Iter(lvl, func(p *proc.Proc) bool {
			p.CurWaitTime += 1
			return true
		})
	}
}

func (w *World) dispatch() {
	if w.running != nil {
		return
	}
	p, ok := w.sd.PopHighest()
	if !ok {
		w.st.NIdle += 1
		return
	}
	w.st.delay(w.clk.Now() - p.EnteredQueue)
	w.st.NDispatch += 1
	w.running = p
}

func (w *World) Tick() {
	t := w.clk.Tick()
	w.age()
	w.genLoad()
	w.account()
	w.dispatch()
	db.DPrintf(db.SIM_TICK, "%d %v", t, w)
}

// Run simulates ntick ticks and returns the statistics so far.
func (w *World) Run(ntick int) *Stats {
	for i := 0; i < ntick; i++ {
		w.Tick()
	}
	w.st.NTick = int(w.clk.Now())
	for i := range w.st.QLen {
		w.st.QLen[i] = w.sd.QLen(proc.Tlevel(i))
	}
	db.DPrintf(db.SIM_STATS, "Stats %v", w.st)
	return w.st
}

func (w *World) Running() *proc.Proc {
	return w.running
}
