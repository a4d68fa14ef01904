package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/procvars/store"
)

const fixture = `
[log]
level = "debug"
format = "json"

[[execution]]
id = "task"
parent = "proc"
[execution.variables]
approved = true
amount = 12.5

[[execution]]
id = "proc"
[execution.variables]
customer = "acme"
count = 3
due = 2024-01-02T03:04:05Z
tags = ["a", "b"]
`

func TestParse_Fixture(t *testing.T) {
	cfg, err := Parse(fixture)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	require.Len(t, cfg.Executions, 2)

	proc := cfg.Executions[1]
	assert.Equal(t, "proc", proc.ID)
	assert.Equal(t, "acme", proc.Variables["customer"])
	assert.Equal(t, int64(3), proc.Variables["count"])
	assert.True(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC).Equal(proc.Variables["due"].(time.Time)))
	assert.Equal(t, []any{"a", "b"}, proc.Variables["tags"])
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown key":    "[log]\nlevel = \"info\"\ncolour = true\n",
		"bad level":      "[log]\nlevel = \"loud\"\n",
		"bad format":     "[log]\nformat = \"xml\"\n",
		"missing id":     "[[execution]]\nparent = \"\"\n",
		"duplicate id":   "[[execution]]\nid = \"a\"\n[[execution]]\nid = \"a\"\n",
		"unknown parent": "[[execution]]\nid = \"a\"\nparent = \"b\"\n",
		"self parent":    "[[execution]]\nid = \"a\"\nparent = \"a\"\n",
		"cycle":          "[[execution]]\nid = \"a\"\nparent = \"b\"\n[[execution]]\nid = \"b\"\nparent = \"a\"\n",
		"syntax":         "[log\n",
	} {
		_, err := Parse(doc)
		assert.Error(t, err, name)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "procvars.toml")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Executions, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "config load failed")
}

func TestConfig_SeedExecutions(t *testing.T) {
	cfg, err := Parse(fixture)
	require.NoError(t, err)

	s := store.NewInMemoryStore()
	require.NoError(t, s.Seed(cfg.SeedExecutions()))

	global, err := s.GetGlobal("task")
	require.NoError(t, err)
	assert.Equal(t, "acme", global["customer"])
	assert.Equal(t, true, global["approved"])
	assert.Equal(t, int64(3), global["count"])
	assert.True(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC).Equal(global["due"].(time.Time)))
}

func TestConfig_TrimsIDsAndParents(t *testing.T) {
	cfg, err := Parse("[[execution]]\nid = \" proc\"\n[[execution]]\nid = \"task\"\nparent = \" proc \"\n")
	require.NoError(t, err)

	assert.Equal(t, []store.SeedExecution{
		{ID: "proc"},
		{ID: "task", ParentID: "proc"},
	}, cfg.SeedExecutions())

	_, err = Parse("[[execution]]\nid = \"a\"\nparent = \" a\"\n")
	assert.ErrorContains(t, err, "is its own parent")
}

func TestLogConfig_Logger(t *testing.T) {
	buf := &bytes.Buffer{}
	l, err := LogConfig{Level: "warn", Format: "text"}.Logger(buf)
	require.NoError(t, err)

	l.Info("hidden")
	assert.Zero(t, buf.Len())
	l.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}
