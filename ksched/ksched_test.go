package ksched

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"mlfq/mlfq"
	"mlfq/proc"
	"mlfq/ticks"
)

type abort struct {
	msg string
}

func panicf(format string, v ...interface{}) {
	panic(abort{fmt.Sprintf(format, v...)})
}

func newSched(nproc int) (*Sched, *proc.ProcTable, *ticks.Ticker) {
	clk := ticks.NewTicker()
	return NewSched(nproc, clk, WithFatalf(panicf)), proc.NewProcTable(nproc), clk
}

func alloc(t *testing.T, pt *proc.ProcTable) *proc.Proc {
	p, err := pt.Alloc("")
	assert.Nil(t, err)
	return p
}

func TestPushPop(t *testing.T) {
	sd, pt, clk := newSched(4)
	a := alloc(t, pt)
	b := alloc(t, pt)
	clk.Set(10)
	sd.PushBack(a, 2)
	sd.PushBack(b, 2)
	assert.Equal(t, 2, sd.QLen(2))
	assert.Equal(t, ticks.Tticks(10), a.EnteredQueue)

	lvl, ok := sd.Highest()
	assert.True(t, ok)
	assert.Equal(t, proc.Tlevel(2), lvl)

	assert.Equal(t, a, sd.PopFront(2))
	assert.Equal(t, b, sd.PopFront(2))
	assert.Equal(t, 0, sd.QLen(2))
	_, ok = sd.Highest()
	assert.False(t, ok)
}

func TestPopHighest(t *testing.T) {
	sd, pt, _ := newSched(4)
	p, ok := sd.PopHighest()
	assert.False(t, ok)
	assert.Nil(t, p)

	a := alloc(t, pt)
	b := alloc(t, pt)
	c := alloc(t, pt)
	sd.PushBack(a, 3)
	sd.PushBack(b, 1)
	sd.PushBack(c, 1)

	for _, want := range []*proc.Proc{b, c, a} {
		p, ok = sd.PopHighest()
		assert.True(t, ok)
		assert.Equal(t, want, p)
		assert.False(t, p.InQueue)
	}
	_, ok = sd.PopHighest()
	assert.False(t, ok)
	assert.Equal(t, 0, sd.QLen(1))
	assert.Equal(t, 0, sd.QLen(3))
}

func TestQuanta(t *testing.T) {
	sd, _, _ := newSched(4)
	for i := 0; i < mlfq.NLEVEL; i++ {
		assert.Equal(t, ticks.Tticks(1<<i), sd.MaxTicks(proc.Tlevel(i)))
	}
}

func TestFatalOnFull(t *testing.T) {
	sd, pt, _ := newSched(1)
	a := alloc(t, pt)
	sd.PushBack(a, 0)
	b := &proc.Proc{Pid: 1, QueuePos: proc.NOT_QUEUED}
	assert.PanicsWithValue(t, abort{"MLFQ: PushBack 1 lvl 0: out of static process info memory"}, func() {
		sd.PushBack(b, 0)
	})
	assert.Equal(t, 1, sd.QLen(0))
	assert.False(t, b.InQueue)
}

func TestFatalOnEmpty(t *testing.T) {
	sd, _, _ := newSched(2)
	assert.PanicsWithValue(t, abort{"MLFQ: PopFront lvl 3: pop from empty queue"}, func() {
		sd.PopFront(3)
	})
}

func TestFatalOnBadLevel(t *testing.T) {
	sd, pt, _ := newSched(2)
	a := alloc(t, pt)
	assert.Panics(t, func() { sd.PushBack(a, mlfq.NLEVEL) })
	assert.Panics(t, func() { sd.PopFront(-1) })
	assert.Panics(t, func() { sd.RemoveQueue(a, 7) })
	assert.Panics(t, func() { sd.QLen(5) })
	assert.False(t, a.InQueue)
}

func TestRemoveNotFoundIsNotFatal(t *testing.T) {
	sd, pt, _ := newSched(2)
	a := alloc(t, pt)
	b := alloc(t, pt)
	sd.PushBack(a, 1)
	assert.NotPanics(t, func() {
		assert.False(t, sd.RemoveQueue(b, 1))
		assert.False(t, sd.RemoveQueue(a, 0))
	})
	assert.True(t, sd.RemoveQueue(a, 1))
	assert.Equal(t, 0, sd.QLen(1))
}

func TestReinit(t *testing.T) {
	sd, pt, _ := newSched(2)
	a := alloc(t, pt)
	sd.PushBack(a, 4)
	sd.InitQueue()
	assert.Equal(t, 0, sd.QLen(4))
	n := 0
	sd.Iter(4, func(p *proc.Proc) bool {
		n += 1
		return true
	})
	assert.Equal(t, 0, n)
	assert.Contains(t, sd.String(), "4: {sz 0 q 16 []}")
}
