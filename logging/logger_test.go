package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Logger = (*VarLogger)(nil)
	_ Logger = NoOpLogger{}
	_ Logger = (*SlogAdapter)(nil)
)

func newBufferLogger(level LogLevel) (*VarLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cfg := DefaultLoggerConfig()
	cfg.Output = buf
	cfg.Level = level
	cfg.AddSource = false
	return NewLogger(cfg), buf
}

func TestParseLogLevel(t *testing.T) {
	lvl, err := ParseLogLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, LogLevelDebug, lvl)

	lvl, err = ParseLogLevel("")
	require.NoError(t, err)
	assert.Equal(t, LogLevelInfo, lvl)

	_, err = ParseLogLevel("loud")
	assert.Error(t, err)
}

func TestVarLogger_ContextAttributes(t *testing.T) {
	l, buf := newBufferLogger(LogLevelInfo)
	l.WithComponent("mutator").WithExecution("exec-1").WithContext("tenant", "acme").Info("hello", "key", "value")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "mutator", rec["component"])
	assert.Equal(t, "exec-1", rec["execution_id"])
	assert.Equal(t, "acme", rec["tenant"])
	assert.Equal(t, "value", rec["key"])
}

func TestVarLogger_WithDoesNotMutateParent(t *testing.T) {
	l, buf := newBufferLogger(LogLevelInfo)
	_ = l.WithContext("k", "v")
	l.Info("plain")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	_, ok := rec["k"]
	assert.False(t, ok)
}

func TestVarLogger_LevelFiltering(t *testing.T) {
	l, buf := newBufferLogger(LogLevelWarn)
	l.Info("dropped")
	l.LogResolve("e1", "local", 2, time.Millisecond)
	assert.Zero(t, buf.Len())

	l.LogBatch("e1", "global", 3, false, time.Millisecond, errors.New("boom"))
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "Variable batch rejected", rec["msg"])
	assert.Equal(t, "boom", rec["error"])
	assert.Equal(t, false, rec["success"])
}
