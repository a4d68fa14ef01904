package store

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/hupe1980/procvars/core"
)

// NewID generates a new unique execution identifier.
func NewID() string { return uuid.NewString() }

// node is one execution of the runtime tree.
type node struct {
	id       string
	parentID string
	children map[string]struct{}
	vars     map[string]any
}

// InMemoryStore is a volatile execution tree storing variables in process
// local maps. It is safe for concurrent access. Variable maps are copied on
// the way in and out (values themselves are shared, not deep copied).
//
// Layout: executionID -> node{parent, children, local variables}
//
// Global variables are resolved along the parent chain: an execution sees the
// variables of all its ancestors up to the process instance, nearer scopes
// shadowing outer ones.
type InMemoryStore struct {
	mu         sync.RWMutex
	executions map[string]*node

	lockMu     sync.Mutex
	scopeLocks map[string]*sync.Mutex // process instance id -> lock
}

// NewInMemoryStore constructs an empty in‑memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		executions: make(map[string]*node),
		scopeLocks: make(map[string]*sync.Mutex),
	}
}

// StartProcessInstance creates a new root execution with the given variables.
func (s *InMemoryStore) StartProcessInstance(vars map[string]any) (core.Execution, error) {
	id := NewID()
	if err := s.AddExecution(id, "", vars); err != nil {
		return core.Execution{}, err
	}
	return core.Execution{ID: id}, nil
}

// SpawnExecution creates a child execution of parentID with the given local
// variables.
func (s *InMemoryStore) SpawnExecution(parentID string, vars map[string]any) (core.Execution, error) {
	id := NewID()
	if err := s.AddExecution(id, parentID, vars); err != nil {
		return core.Execution{}, err
	}
	return core.Execution{ID: id, ParentID: parentID}, nil
}

// AddExecution inserts an execution with an explicit id. An empty parentID
// creates a process instance.
func (s *InMemoryStore) AddExecution(id, parentID string, vars map[string]any) error {
	if id == "" {
		return core.NewInvalidArgumentError("execution id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.executions[id]; exists {
		return fmt.Errorf("%w: '%s'", ErrDuplicateExecution, id)
	}
	if parentID != "" {
		parent, ok := s.executions[parentID]
		if !ok {
			return core.NewNotFoundError(parentID)
		}
		parent.children[id] = struct{}{}
	}
	n := &node{id: id, parentID: parentID, children: map[string]struct{}{}, vars: make(map[string]any, len(vars))}
	maps.Copy(n.vars, vars)
	s.executions[id] = n
	return nil
}

// RemoveExecution deletes a leaf execution together with its local variables.
func (s *InMemoryStore) RemoveExecution(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.executions[id]
	if !ok {
		return core.NewNotFoundError(id)
	}
	if len(n.children) > 0 {
		return fmt.Errorf("%w: '%s'", ErrHasChildren, id)
	}
	if parent, ok := s.executions[n.parentID]; ok {
		delete(parent.children, id)
	}
	delete(s.executions, id)
	if n.parentID == "" {
		s.lockMu.Lock()
		delete(s.scopeLocks, id)
		s.lockMu.Unlock()
	}
	return nil
}

// GetExecution implements core.ExecutionLookup.
func (s *InMemoryStore) GetExecution(executionID string) (core.Execution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.executions[executionID]
	if !ok {
		return core.Execution{}, core.NewNotFoundError(executionID)
	}
	return core.Execution{ID: n.id, ParentID: n.parentID}, nil
}

// Executions returns a snapshot of all executions ordered by id.
func (s *InMemoryStore) Executions() []core.Execution {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := slices.Sorted(maps.Keys(s.executions))
	out := make([]core.Execution, 0, len(ids))
	for _, id := range ids {
		out = append(out, core.Execution{ID: id, ParentID: s.executions[id].parentID})
	}
	return out
}

// Children returns the ids of the direct child executions, sorted.
func (s *InMemoryStore) Children(executionID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.executions[executionID]
	if !ok {
		return nil, core.NewNotFoundError(executionID)
	}
	return slices.Sorted(maps.Keys(n.children)), nil
}

// GetLocal returns a copy of the execution's own variables.
func (s *InMemoryStore) GetLocal(executionID string) (map[string]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.executions[executionID]
	if !ok {
		return nil, core.NewNotFoundError(executionID)
	}
	return maps.Clone(n.vars), nil
}

// SetLocal merges vars into the execution's own variables.
func (s *InMemoryStore) SetLocal(executionID string, vars map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.executions[executionID]
	if !ok {
		return core.NewNotFoundError(executionID)
	}
	maps.Copy(n.vars, vars)
	return nil
}

// RemoveLocal deletes the named variables from the execution. Unknown names
// are ignored.
func (s *InMemoryStore) RemoveLocal(executionID string, names []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.executions[executionID]
	if !ok {
		return core.NewNotFoundError(executionID)
	}
	for _, name := range names {
		delete(n.vars, name)
	}
	return nil
}

// GetGlobal returns every variable visible from the execution: the variables
// of the process instance overlaid by each descendant scope down to (and
// including) the execution itself.
func (s *InMemoryStore) GetGlobal(executionID string) (map[string]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	chain, err := s.chainLocked(executionID)
	if err != nil {
		return nil, err
	}
	out := make(map[string]any)
	for i := len(chain) - 1; i >= 0; i-- {
		maps.Copy(out, chain[i].vars)
	}
	return out, nil
}

// SetGlobal writes each variable to the nearest execution, starting at owner
// and walking up, that already holds a variable of that name. Variables not
// found anywhere on the chain are created on the process instance.
func (s *InMemoryStore) SetGlobal(ownerExecutionID string, vars map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	chain, err := s.chainLocked(ownerExecutionID)
	if err != nil {
		return err
	}
	root := chain[len(chain)-1]
	for name, value := range vars {
		target := root
		for _, n := range chain {
			if _, ok := n.vars[name]; ok {
				target = n
				break
			}
		}
		target.vars[name] = value
	}
	return nil
}

// LockScope serializes mutations within the process instance that owns the
// execution. Unknown executions are locked by their own id.
func (s *InMemoryStore) LockScope(executionID string) func() {
	key := executionID
	s.mu.RLock()
	if chain, err := s.chainLocked(executionID); err == nil {
		key = chain[len(chain)-1].id
	}
	s.mu.RUnlock()

	s.lockMu.Lock()
	l, ok := s.scopeLocks[key]
	if !ok {
		l = &sync.Mutex{}
		s.scopeLocks[key] = l
	}
	s.lockMu.Unlock()

	l.Lock()
	return l.Unlock
}

// chainLocked returns the execution followed by its ancestors up to the
// process instance; caller must hold s.mu.
func (s *InMemoryStore) chainLocked(executionID string) ([]*node, error) {
	n, ok := s.executions[executionID]
	if !ok {
		return nil, core.NewNotFoundError(executionID)
	}
	chain := []*node{n}
	for n.parentID != "" {
		parent, ok := s.executions[n.parentID]
		if !ok {
			return nil, fmt.Errorf("%w: '%s' of '%s'", ErrUnresolvedParent, n.parentID, n.id)
		}
		n = parent
		chain = append(chain, n)
	}
	return chain, nil
}
