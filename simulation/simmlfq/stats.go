package simmlfq

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/montanaflynn/stats"

	db "mlfq/debug"
	"mlfq/mlfq"
	"mlfq/ticks"
)

type Stats struct {
	NTick     int
	NSpawn    int
	NReject   int
	NExit     int
	NDispatch int
	NDemote   int
	NIdle     int
	QLen      [mlfq.NLEVEL]int
	delays    []float64
}

func newStats() *Stats {
	return &Stats{delays: make([]float64, 0)}
}

func (st *Stats) delay(d ticks.Tticks) {
	st.delays = append(st.delays, float64(d))
}

// Queued returns the number of processes waiting in any level.
func (st *Stats) Queued() int {
	n := 0
	for _, l := range st.QLen {
		n += l
	}
	return n
}

// AvgDelay is the mean number of ticks between enqueue and dispatch.
func (st *Stats) AvgDelay() float64 {
	if len(st.delays) == 0 {
		return 0.0
	}
	m, err := stats.Mean(st.delays)
	if err != nil {
		db.DFatalf("Error calculating mean: %v", err)
	}
	return m
}

func (st *Stats) PercentileDelay(p float64) float64 {
	if len(st.delays) == 0 {
		return 0.0
	}
	v, err := stats.Percentile(st.delays, p)
	if err != nil {
		db.DFatalf("Error calculating percentile %v: %v", p, err)
	}
	return v
}

func (st *Stats) String() string {
	return fmt.Sprintf("ticks %s spawned %s rejected %s exited %s dispatched %s demoted %s idle %s\n"+
		"queue delay avg %.2fT p50 %.1fT p99 %.1fT\nqlen %v",
		humanize.Comma(int64(st.NTick)), humanize.Comma(int64(st.NSpawn)),
		humanize.Comma(int64(st.NReject)), humanize.Comma(int64(st.NExit)),
		humanize.Comma(int64(st.NDispatch)), humanize.Comma(int64(st.NDemote)),
		humanize.Comma(int64(st.NIdle)),
		st.AvgDelay(), st.PercentileDelay(50), st.PercentileDelay(99), st.QLen)
}
