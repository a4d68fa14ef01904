// Package config loads procvars configuration and execution-tree fixtures
// from TOML files.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/hupe1980/procvars/logging"
	"github.com/hupe1980/procvars/store"
)

// Config is the top-level procvars configuration file.
type Config struct {
	Log        LogConfig         `toml:"log"`
	Executions []ExecutionConfig `toml:"execution"`
}

// LogConfig selects the level and output format of the CLI logger.
type LogConfig struct {
	Level     string `toml:"level"`
	Format    string `toml:"format"`
	AddSource bool   `toml:"add_source"`
}

// ExecutionConfig declares one execution of the fixture tree. An empty Parent
// declares a process instance.
type ExecutionConfig struct {
	ID        string         `toml:"id"`
	Parent    string         `toml:"parent"`
	Variables map[string]any `toml:"variables"`
}

// Default returns a configuration without executions logging text at info level.
func Default() Config {
	return Config{Log: LogConfig{Level: "info", Format: "text"}}
}

// Load reads, defaults and validates the TOML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text. Unknown keys are rejected.
func Parse(data string) (Config, error) {
	cfg := Default()
	meta, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks log settings and the shape of the execution tree.
func Validate(cfg Config) error {
	if _, err := logging.ParseLogLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log: unknown format %q", cfg.Log.Format)
	}

	parents := make(map[string]string, len(cfg.Executions))
	for i, e := range cfg.Executions {
		id := strings.TrimSpace(e.ID)
		if id == "" {
			return fmt.Errorf("execution[%d] invalid: id is required", i)
		}
		if _, dup := parents[id]; dup {
			return fmt.Errorf("execution[%d] invalid: duplicate id %q", i, id)
		}
		parent := strings.TrimSpace(e.Parent)
		if parent == id {
			return fmt.Errorf("execution[%d] invalid: %q is its own parent", i, id)
		}
		parents[id] = parent
	}
	for id, parent := range parents {
		if parent != "" {
			if _, ok := parents[parent]; !ok {
				return fmt.Errorf("execution %q invalid: unknown parent %q", id, parent)
			}
		}
		seen := map[string]bool{id: true}
		for p := parent; p != ""; p = parents[p] {
			if seen[p] {
				return fmt.Errorf("execution %q invalid: parent cycle through %q", id, p)
			}
			seen[p] = true
		}
	}
	return nil
}

// SeedExecutions converts the fixture into store seed entries.
func (c Config) SeedExecutions() []store.SeedExecution {
	out := make([]store.SeedExecution, 0, len(c.Executions))
	for _, e := range c.Executions {
		out = append(out, store.SeedExecution{ID: strings.TrimSpace(e.ID), ParentID: strings.TrimSpace(e.Parent), Variables: e.Variables})
	}
	return out
}

// Logger builds a VarLogger writing to w.
func (c LogConfig) Logger(w io.Writer) (*logging.VarLogger, error) {
	level, err := logging.ParseLogLevel(c.Level)
	if err != nil {
		return nil, err
	}
	cfg := logging.DefaultLoggerConfig()
	cfg.Level = level
	cfg.Format = c.Format
	cfg.AddSource = c.AddSource
	cfg.Output = w
	return logging.NewLogger(cfg), nil
}
