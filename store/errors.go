package store

import "fmt"

var (
	// ErrDuplicateExecution is returned when an execution id is already in use.
	ErrDuplicateExecution = fmt.Errorf("execution already exists")
	// ErrHasChildren is returned when removing an execution that still has
	// child executions.
	ErrHasChildren = fmt.Errorf("execution has child executions")
	// ErrUnresolvedParent is returned by Seed when an execution references a
	// parent that is neither seeded nor present in the store.
	ErrUnresolvedParent = fmt.Errorf("parent execution cannot be resolved")
)
