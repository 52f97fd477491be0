package ticks

import (
	"go.uber.org/atomic"
)

// Tticks counts timer interrupts since boot.
type Tticks uint64

type Clock interface {
	Now() Tticks
}

// Ticker is the global tick counter. The timer-interrupt path calls
// Tick; everyone else only reads it.
type Ticker struct {
	n atomic.Uint64
}

func NewTicker() *Ticker {
	return &Ticker{}
}

func (t *Ticker) Now() Tticks {
	return Tticks(t.n.Load())
}

func (t *Ticker) Tick() Tticks {
	return Tticks(t.n.Inc())
}

func (t *Ticker) Set(n Tticks) {
	t.n.Store(uint64(n))
}
