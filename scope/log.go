package scope

import (
	"time"

	"github.com/hupe1980/procvars/logging"
)

// resolveLogger and batchLogger are implemented by logging.VarLogger; plain
// Logger implementations receive the same data as key/value pairs.
type resolveLogger interface {
	LogResolve(executionID, scope string, count int, dur time.Duration)
}

type batchLogger interface {
	LogBatch(executionID, scope string, size int, override bool, dur time.Duration, err error)
}

func nonNilLogger(l logging.Logger) logging.Logger {
	if l == nil {
		return logging.NoOpLogger{}
	}
	return l
}

func logResolve(l logging.Logger, executionID, scope string, count int, dur time.Duration) {
	if rl, ok := l.(resolveLogger); ok {
		rl.LogResolve(executionID, scope, count, dur)
		return
	}
	l.Debug("Variables resolved", "execution_id", executionID, "scope", scope, "count", count, "duration", dur)
}

func logBatch(l logging.Logger, executionID, scope string, size int, override bool, dur time.Duration, err error) {
	if bl, ok := l.(batchLogger); ok {
		bl.LogBatch(executionID, scope, size, override, dur, err)
		return
	}
	if err != nil {
		l.Warn("Variable batch rejected", "execution_id", executionID, "scope", scope, "batch_size", size, "override", override, "error", err)
		return
	}
	l.Info("Variable batch applied", "execution_id", executionID, "scope", scope, "batch_size", size, "override", override, "duration", dur)
}
