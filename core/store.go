package core

// VariableStore is the source of truth for execution variables. Implementations
// must be safe for concurrent use and return maps the caller may mutate.
//
// Contract:
//   - GetLocal returns only the variables attached to the execution itself
//   - GetGlobal returns the variables visible through the owning process
//     instance, resolved by the store
//   - SetLocal / SetGlobal apply the whole mapping in one call
//   - Unknown execution ids yield a *NotFoundError
type VariableStore interface {
	GetLocal(executionID string) (map[string]any, error)
	SetLocal(executionID string, vars map[string]any) error
	RemoveLocal(executionID string, names []string) error
	GetGlobal(executionID string) (map[string]any, error)
	SetGlobal(ownerExecutionID string, vars map[string]any) error
}

// ExecutionLookup resolves execution identity and hierarchy.
type ExecutionLookup interface {
	GetExecution(executionID string) (Execution, error)
}

// ScopeLocker is optionally implemented by stores that can serialize a
// read-check-write sequence touching an execution's variables. The returned
// func releases the lock.
type ScopeLocker interface {
	LockScope(executionID string) (unlock func())
}

// Backend combines the contracts required by the façade.
type Backend interface {
	VariableStore
	ExecutionLookup
}
