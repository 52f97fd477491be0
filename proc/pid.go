package proc

import (
	"strconv"

	"github.com/thanhpk/randstr"
)

// Tpid is a process's slot index in the process table. It is stable
// for the lifetime of the process and is the queue manager's identity
// key for a handle.
type Tpid int

const NO_PID Tpid = -1

func (pid Tpid) String() string {
	return strconv.Itoa(int(pid))
}

func GenName() string {
	return randstr.Hex(8)
}
