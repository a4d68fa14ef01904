package scope

import (
	"fmt"

	"github.com/hupe1980/procvars/core"
)

const msgNotInProcess = "cannot set global variables: execution is not part of a process"

// writeTarget returns the execution id a batch of the given scope must be
// written to. Global variables belong to the owning ancestor, so they are
// written through the parent; a parentless execution cannot hold them.
func writeTarget(exec core.Execution, sc core.Scope) (string, error) {
	if sc == core.ScopeLocal {
		return exec.ID, nil
	}
	if exec.IsRoot() {
		return "", core.NewInvalidArgumentError(msgNotInProcess)
	}
	return exec.ParentID, nil
}

// write issues exactly one store call for the whole mapping.
func write(store core.VariableStore, target string, sc core.Scope, vars map[string]any) error {
	var err error
	if sc == core.ScopeLocal {
		err = store.SetLocal(target, vars)
	} else {
		err = store.SetGlobal(target, vars)
	}
	if err != nil {
		return fmt.Errorf("failed to set %s variables on '%s': %w", sc, target, err)
	}
	return nil
}

// readScope fetches the raw mapping for one scope of an execution.
func readScope(store core.VariableStore, executionID string, sc core.Scope) (map[string]any, error) {
	var (
		raw map[string]any
		err error
	)
	if sc == core.ScopeGlobal {
		raw, err = store.GetGlobal(executionID)
	} else {
		raw, err = store.GetLocal(executionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s variables of '%s': %w", sc, executionID, err)
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return raw, nil
}
