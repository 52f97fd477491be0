package param

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	p := Default()
	assert.Equal(t, 64, p.NPROC)
	assert.Equal(t, "", p.DEBUG)
	assert.Equal(t, 1000, p.Sim.NTICK)
	assert.Equal(t, 0.2, p.Sim.ARRIVAL_RATE)
	assert.Equal(t, 20, p.Sim.MAX_SERVICE_TICKS)
	assert.Equal(t, uint64(1), p.Sim.SEED)
	assert.Nil(t, p.Validate())
}

func TestReadParam(t *testing.T) {
	pn := filepath.Join(t.TempDir(), "mlfq.yaml")
	err := os.WriteFile(pn, []byte("nproc: 16\nsim:\n  seed: 9\n"), 0644)
	assert.Nil(t, err)

	p, err := ReadParam(pn)
	assert.Nil(t, err)
	assert.Equal(t, 16, p.NPROC)
	assert.Equal(t, uint64(9), p.Sim.SEED)
	// Unset keys keep their defaults.
	assert.Equal(t, 1000, p.Sim.NTICK)
	assert.Equal(t, 20, p.Sim.MAX_SERVICE_TICKS)
}

func TestReadParamErr(t *testing.T) {
	_, err := ReadParam("nonexistent.yaml")
	assert.NotNil(t, err)

	pn := filepath.Join(t.TempDir(), "bad.yaml")
	assert.Nil(t, os.WriteFile(pn, []byte("nproc: 0\n"), 0644))
	_, err = ReadParam(pn)
	assert.NotNil(t, err)
}

func TestApply(t *testing.T) {
	kv, err := ParseOverrides("nproc=32,sim.seed=7,sim.arrival_rate=0.5,debug=MLFQ")
	assert.Nil(t, err)
	p := Default()
	assert.Nil(t, p.Apply(kv))
	assert.Equal(t, 32, p.NPROC)
	assert.Equal(t, uint64(7), p.Sim.SEED)
	assert.Equal(t, 0.5, p.Sim.ARRIVAL_RATE)
	assert.Equal(t, "MLFQ", p.DEBUG)
	assert.Equal(t, 1000, p.Sim.NTICK)
}

func TestApplyErr(t *testing.T) {
	_, err := ParseOverrides("nproc")
	assert.NotNil(t, err)

	kv, err := ParseOverrides("bogus=1")
	assert.Nil(t, err)
	assert.NotNil(t, Default().Apply(kv))

	kv, err = ParseOverrides("nproc=-3")
	assert.Nil(t, err)
	assert.NotNil(t, Default().Apply(kv))

	kv, err = ParseOverrides("")
	assert.Nil(t, err)
	assert.Len(t, kv, 0)
}
