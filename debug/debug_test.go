package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabels(t *testing.T) {
	SetDebug("MLFQ;SIM_TICK;")
	defer SetDebug("")

	assert.True(t, IsLabelSet(MLFQ))
	assert.True(t, IsLabelSet(SIM_TICK))
	assert.False(t, IsLabelSet(SIM))
	assert.True(t, IsLabelSet(ALWAYS))
	assert.True(t, IsLabelSet(ERROR))
	assert.False(t, IsLabelSet(NEVER))
	DPrintf(MLFQ, "label %v set", MLFQ)

	SetDebug("")
	assert.False(t, IsLabelSet(MLFQ))
	assert.Len(t, parseLabels(""), 0)
}
