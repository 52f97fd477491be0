package debug

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//
// Debug output is controled by MLFQDEBUG environment variable, which
// can be a list of labels (e.g., "MLFQ;SIM").
//

const MLFQDEBUG = "MLFQDEBUG"

var (
	mu     sync.Mutex
	labels map[Tselector]bool
	logger *zap.SugaredLogger
)

func init() {
	logger = newLogger()
	labels = parseLabels(os.Getenv(MLFQDEBUG))
}

func newLogger() *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000000")
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	l, err := cfg.Build()
	if err != nil {
		log.Fatalf("FATAL debug logger %v", err)
	}
	return l.Sugar()
}

func parseLabels(s string) map[Tselector]bool {
	m := make(map[Tselector]bool)
	if s == "" {
		return m
	}
	for _, l := range strings.Split(s, ";") {
		if l == "" {
			continue
		}
		m[Tselector(l)] = true
	}
	return m
}

// SetDebug replaces the enabled labels with those in s, using the
// same syntax as MLFQDEBUG.
func SetDebug(s string) {
	mu.Lock()
	defer mu.Unlock()

	labels = parseLabels(s)
}

func IsLabelSet(label Tselector) bool {
	if label == ALWAYS || label == ERROR {
		return true
	}
	if label == NEVER {
		return false
	}
	mu.Lock()
	defer mu.Unlock()
	return labels[label]
}

func DPrintf(label Tselector, format string, v ...interface{}) {
	if IsLabelSet(label) {
		logger.Infof("%v %v", label, fmt.Sprintf(format, v...))
	}
}

func DFatalf(format string, v ...interface{}) {
	// Get info for the caller.
	pc, file, line, ok := runtime.Caller(1)
	fnDetails := runtime.FuncForPC(pc)
	if ok && fnDetails != nil {
		logger.Fatalf("FATAL %v %v:%v %v", fnDetails.Name(), file, line, fmt.Sprintf(format, v...))
	} else {
		logger.Fatalf("FATAL (missing details) %v", fmt.Sprintf(format, v...))
	}
}
