package main

import (
	"flag"
	"fmt"
	"os"

	db "mlfq/debug"
	"mlfq/param"
	"mlfq/simulation/simmlfq"
)

var config = flag.String("config", "", "YAML parameter file (defaults if empty)")
var ntick = flag.Int("ntick", -1, "ticks to simulate (overrides sim.ntick)")
var set = flag.String("set", "", "comma-separated key=value overrides, e.g. nproc=32,sim.seed=7")
var debug = flag.String("debug", "", "debug selectors, e.g. MLFQ;SIM")

func readParam() (*param.Param, error) {
	p := param.Default()
	if *config != "" {
		var err error
		if p, err = param.ReadParam(*config); err != nil {
			return nil, err
		}
	}
	kv, err := param.ParseOverrides(*set)
	if err != nil {
		return nil, err
	}
	if err := p.Apply(kv); err != nil {
		return nil, err
	}
	if *ntick >= 0 {
		p.Sim.NTICK = *ntick
	}
	return p, nil
}

func main() {
	flag.Parse()
	p, err := readParam()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v: %v\n", os.Args[0], err)
		os.Exit(1)
	}
	if *debug != "" {
		db.SetDebug(*debug)
	} else if p.DEBUG != "" {
		db.SetDebug(p.DEBUG)
	}
	db.DPrintf(db.SIM, "Param %v", p)
	w := simmlfq.NewWorld(p)
	st := w.Run(p.Sim.NTICK)
	fmt.Printf("%v\n", st)
}
