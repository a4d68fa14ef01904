// Package logging provides a minimal logging interface and adapters for procvars.
//
// The Logger interface defines the standard logging methods (Debug, Info, Warn, Error)
// that the resolver, mutator and stores use for observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping an existing *slog.Logger
//   - VarLogger, a configurable slog logger with execution/component context
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	pv := procvars.New(func(o *procvars.Options) { o.Logger = logger })
//
// The design intentionally keeps the interface minimal to avoid vendor lock-in
// while supporting structured logging where available.
package logging
