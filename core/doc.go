// Package core provides the foundational domain types and contracts used by
// procvars. It defines:
//
//   - Executions (nodes of a process-instance runtime tree)
//   - Variables and their scopes (local to an execution or global to the
//     owning process instance)
//   - Batch entries submitted to the mutator
//   - Pluggable contracts for variable storage and execution lookup
//   - The error taxonomy shared by all packages
//
// The package intentionally keeps implementation concerns (storage backends,
// codecs, transport) out of scope, exposing small interfaces so custom
// backends can be substituted without touching resolver or mutator code.
package core
