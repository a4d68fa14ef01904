package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/procvars/store"
)

// ExecutionTreeBuilder helps construct in-memory execution trees with fluent
// chaining for tests.
// Example:
//
//	s := NewExecutionTreeBuilder().
//		Process("proc").Var("g", 1).
//		Child("task", "proc").Var("l", 2).
//		Build(t)
type ExecutionTreeBuilder struct {
	execs []store.SeedExecution
}

// NewExecutionTreeBuilder creates an empty builder.
func NewExecutionTreeBuilder() *ExecutionTreeBuilder {
	return &ExecutionTreeBuilder{}
}

// Process adds a process instance (root execution) (chainable).
func (b *ExecutionTreeBuilder) Process(id string) *ExecutionTreeBuilder {
	return b.Child(id, "")
}

// Child adds an execution below parentID (chainable).
func (b *ExecutionTreeBuilder) Child(id, parentID string) *ExecutionTreeBuilder {
	b.execs = append(b.execs, store.SeedExecution{ID: id, ParentID: parentID, Variables: map[string]any{}})
	return b
}

// Var sets a local variable on the most recently added execution (chainable).
func (b *ExecutionTreeBuilder) Var(name string, value any) *ExecutionTreeBuilder {
	if len(b.execs) == 0 {
		panic("testutil: Var called before Process or Child")
	}
	b.execs[len(b.execs)-1].Variables[name] = value
	return b
}

// Build returns a populated *store.InMemoryStore, failing the test on error.
func (b *ExecutionTreeBuilder) Build(t testing.TB) *store.InMemoryStore {
	t.Helper()
	s := store.NewInMemoryStore()
	require.NoError(t, s.Seed(b.execs))
	return s
}
