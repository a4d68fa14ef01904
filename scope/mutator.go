package scope

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/hupe1980/procvars/core"
	"github.com/hupe1980/procvars/logging"
)

const (
	msgEmptyBatch   = "request did not contain a list of variables to create"
	msgNameRequired = "name is required"
	msgMixedScopes  = "mixed scopes not allowed in one batch"

	// TypeBinary is the type hint attached to variables written through SetBinary.
	TypeBinary = "binary"
)

// MutatorOptions configures a Mutator.
type MutatorOptions struct {
	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Mutator applies validated variable writes to an execution.
//
// Contract:
//   - A batch is validated completely before any write is issued
//   - A successful batch results in exactly one store write call
//   - Global batches are written through the execution's parent
//   - When the store implements core.ScopeLocker the conflict check and the
//     write happen under that lock
type Mutator struct {
	store  core.VariableStore
	lookup core.ExecutionLookup
	logger logging.Logger
}

// NewMutator creates a Mutator writing to store.
func NewMutator(store core.VariableStore, lookup core.ExecutionLookup, optFns ...func(o *MutatorOptions)) *Mutator {
	opts := MutatorOptions{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Mutator{store: store, lookup: lookup, logger: nonNilLogger(opts.Logger)}
}

// Apply validates entries and writes them as one batch. Entries without a
// scope default to core.ScopeLocal; all entries must end up in the same scope.
// Unless overrideExisting is set, a name already present in the target scope
// fails the batch with a *core.ConflictError for the first such name. The
// result echoes every entry in input order.
func (m *Mutator) Apply(executionID string, entries []core.VariableEntry, overrideExisting bool) ([]core.Variable, error) {
	start := time.Now()
	sc, result, err := m.apply(executionID, entries, overrideExisting)
	logBatch(m.logger, executionID, sc.String(), len(entries), overrideExisting, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (m *Mutator) apply(executionID string, entries []core.VariableEntry, overrideExisting bool) (core.Scope, []core.Variable, error) {
	if len(entries) == 0 {
		return core.ScopeUnspecified, nil, core.NewInvalidArgumentError(msgEmptyBatch)
	}

	exec, err := m.lookup.GetExecution(executionID)
	if err != nil {
		return core.ScopeUnspecified, nil, err
	}

	shared, err := sharedScope(entries)
	if err != nil {
		return core.ScopeUnspecified, nil, err
	}

	target, err := writeTarget(exec, shared)
	if err != nil {
		return shared, nil, err
	}

	unlock := m.lockScope(executionID)
	defer unlock()

	if !overrideExisting {
		if err := m.checkConflicts(executionID, target, shared, entries); err != nil {
			return shared, nil, err
		}
	}

	vars := make(map[string]any, len(entries))
	result := make([]core.Variable, 0, len(entries))
	for _, e := range entries {
		vars[e.Name] = e.Value
		result = append(result, core.Variable{
			Name:        e.Name,
			Value:       e.Value,
			Type:        e.Type,
			Scope:       shared,
			ExecutionID: executionID,
		})
	}

	if err := write(m.store, target, shared, vars); err != nil {
		return shared, nil, err
	}
	return shared, result, nil
}

// sharedScope validates names and scopes and returns the batch scope, taken
// from the first entry.
func sharedScope(entries []core.VariableEntry) (core.Scope, error) {
	var shared core.Scope
	for i, e := range entries {
		if e.Name == "" {
			return core.ScopeUnspecified, core.NewInvalidArgumentError(msgNameRequired)
		}
		if !e.Scope.Valid() {
			return core.ScopeUnspecified, core.NewInvalidArgumentError(fmt.Sprintf("invalid scope %q for variable '%s'", string(e.Scope), e.Name))
		}
		sc := e.Scope.OrDefault()
		if i == 0 {
			shared = sc
			continue
		}
		if sc != shared {
			return core.ScopeUnspecified, core.NewInvalidArgumentError(msgMixedScopes)
		}
	}
	return shared, nil
}

// checkConflicts fails on the first entry whose name already exists in the
// scope the batch will be written to. Global batches are checked against the
// target's global view, so locals of the execution itself do not count.
func (m *Mutator) checkConflicts(executionID, target string, sc core.Scope, entries []core.VariableEntry) error {
	existing, err := readScope(m.store, target, sc)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if _, ok := existing[e.Name]; ok {
			return &core.ConflictError{Name: e.Name, ExecutionID: executionID}
		}
	}
	return nil
}

// SetBinary writes a single binary local variable, overwriting any existing
// value of the same name.
func (m *Mutator) SetBinary(executionID, name string, data []byte) (core.Variable, error) {
	if name == "" {
		return core.Variable{}, core.NewInvalidArgumentError(msgNameRequired)
	}
	if _, err := m.lookup.GetExecution(executionID); err != nil {
		return core.Variable{}, err
	}

	value := slices.Clone(data)
	if value == nil {
		value = []byte{}
	}
	if err := write(m.store, executionID, core.ScopeLocal, map[string]any{name: value}); err != nil {
		return core.Variable{}, err
	}

	m.logger.Info("Binary variable set", "execution_id", executionID, "name", name, "size", len(value))
	return core.Variable{
		Name:        name,
		Value:       value,
		Type:        TypeBinary,
		Scope:       core.ScopeLocal,
		ExecutionID: executionID,
	}, nil
}

// ClearAllLocal removes every local variable of the execution in one store
// call. Global variables are left untouched.
func (m *Mutator) ClearAllLocal(executionID string) error {
	if _, err := m.lookup.GetExecution(executionID); err != nil {
		return err
	}

	unlock := m.lockScope(executionID)
	defer unlock()

	local, err := readScope(m.store, executionID, core.ScopeLocal)
	if err != nil {
		return err
	}
	if len(local) == 0 {
		return nil
	}

	names := slices.Sorted(maps.Keys(local))
	if err := m.store.RemoveLocal(executionID, names); err != nil {
		return fmt.Errorf("failed to remove local variables of '%s': %w", executionID, err)
	}
	m.logger.Info("Local variables cleared", "execution_id", executionID, "count", len(names))
	return nil
}

func (m *Mutator) lockScope(executionID string) func() {
	if locker, ok := m.store.(core.ScopeLocker); ok {
		return locker.LockScope(executionID)
	}
	return func() {}
}
