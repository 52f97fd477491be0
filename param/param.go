package param

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	db "mlfq/debug"
)

var defaults = `
nproc: 64
debug: ""

sim:
  ntick: 1000
  arrival_rate: 0.2
  max_service_ticks: 20
  seed: 1
`

type Param struct {
	// Number of process slots, and the capacity of each queue level.
	NPROC int `yaml:"nproc"`
	// Debug selectors, in MLFQDEBUG syntax.
	DEBUG string `yaml:"debug"`
	Sim   struct {
		// Number of ticks to simulate.
		NTICK int `yaml:"ntick"`
		// Mean process arrivals per tick.
		ARRIVAL_RATE float64 `yaml:"arrival_rate"`
		// Service demand is uniform in [1, max_service_ticks].
		MAX_SERVICE_TICKS int    `yaml:"max_service_ticks"`
		SEED              uint64 `yaml:"seed"`
	} `yaml:"sim"`
}

func (p *Param) String() string {
	return fmt.Sprintf("{nproc %d debug %q sim {ntick %d rate %v maxsvc %d seed %d}}",
		p.NPROC, p.DEBUG, p.Sim.NTICK, p.Sim.ARRIVAL_RATE, p.Sim.MAX_SERVICE_TICKS, p.Sim.SEED)
}

func decode(p *Param, params string) error {
	d := yaml.NewDecoder(strings.NewReader(params))
	if err := d.Decode(p); err != nil {
		return err
	}
	return nil
}

func Default() *Param {
	p := &Param{}
	if err := decode(p, defaults); err != nil {
		db.DFatalf("Yalm decode defaults err %v\n", err)
	}
	return p
}

// ReadParam reads the YAML file pn on top of the defaults.
func ReadParam(pn string) (*Param, error) {
	b, err := os.ReadFile(pn)
	if err != nil {
		return nil, err
	}
	p := Default()
	if err := decode(p, string(b)); err != nil {
		db.DPrintf(db.PARAM_ERR, "Yalm decode %v err %v", pn, err)
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	db.DPrintf(db.PARAM, "ReadParam %v: %v", pn, p)
	return p, nil
}

// ParseOverrides turns "k=v,k=v" into a nested map, splitting keys on
// '.' (e.g., "sim.seed=7").
func ParseOverrides(s string) (map[string]interface{}, error) {
	m := make(map[string]interface{})
	if s == "" {
		return m, nil
	}
	for _, kv := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("bad override %q", kv)
		}
		path := strings.Split(k, ".")
		cur := m
		for _, c := range path[:len(path)-1] {
			sub, ok := cur[c].(map[string]interface{})
			if !ok {
				sub = make(map[string]interface{})
				cur[c] = sub
			}
			cur = sub
		}
		cur[path[len(path)-1]] = v
	}
	return m, nil
}

// Apply overlays kv on p. Values may be strings; unknown keys are an
// error.
func (p *Param) Apply(kv map[string]interface{}) error {
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "yaml",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           p,
	})
	if err != nil {
		return err
	}
	if err := d.Decode(kv); err != nil {
		db.DPrintf(db.PARAM_ERR, "Apply %v err %v", kv, err)
		return err
	}
	return p.Validate()
}

func (p *Param) Validate() error {
	if p.NPROC <= 0 {
		return fmt.Errorf("nproc %d must be positive", p.NPROC)
	}
	if p.Sim.NTICK < 0 {
		return fmt.Errorf("sim.ntick %d must not be negative", p.Sim.NTICK)
	}
	if p.Sim.ARRIVAL_RATE < 0 {
		return fmt.Errorf("sim.arrival_rate %v must not be negative", p.Sim.ARRIVAL_RATE)
	}
	if p.Sim.MAX_SERVICE_TICKS <= 0 {
		return fmt.Errorf("sim.max_service_ticks %d must be positive", p.Sim.MAX_SERVICE_TICKS)
	}
	return nil
}
