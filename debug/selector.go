package debug

type Tselector string

// ALWAYS
const (
	ALWAYS Tselector = "ALWAYS"
	ERROR            = "ERROR"
	NEVER            = "NEVER"
)

// ERR
const (
	ERR Tselector = "_ERR"
)

// Tests
const (
	TEST  Tselector = "TEST"
	TEST1           = "TEST1"
)

// Queue manager
const (
	MLFQ     Tselector = "MLFQ"
	MLFQ_ERR           = MLFQ + ERR
)

// Kernel scheduler boundary
const (
	KSCHED     Tselector = "KSCHED"
	KSCHED_ERR           = KSCHED + ERR
)

// Process table
const (
	PROC     Tselector = "PROC"
	PROC_ERR           = PROC + ERR
)

// Configuration
const (
	PARAM     Tselector = "PARAM"
	PARAM_ERR           = PARAM + ERR
)

// Simulation
const (
	SIM       Tselector = "SIM"
	SIM_ERR             = SIM + ERR
	SIM_TICK            = "SIM_TICK"
	SIM_STATS           = "SIM_STATS"
)
