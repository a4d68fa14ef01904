// Package scope resolves and mutates execution variables across the local and
// global scopes of a process-instance tree.
//
// Resolver produces the effective variable view of an execution by overlaying
// the local map over the global map (local always wins). Mutator validates a
// batch of writes (names, scope homogeneity, conflicts) and routes it as a
// single store write to either the execution itself or, for global variables,
// to its parent. Neither type holds state between calls; the core.VariableStore
// is the source of truth.
package scope
