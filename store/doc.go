// Package store contains concrete implementations of core.VariableStore and
// core.ExecutionLookup.
//
// The canonical interfaces live in the core package to avoid dependency cycles
// and keep domain contracts central. InMemoryStore keeps a process-local
// execution tree with per-execution variables; it is suited for tests, the
// CLI and single-process embedding. Durable backends can be added in
// sub-packages without touching resolver or mutator code.
package store
