package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/procvars/core"
	"github.com/hupe1980/procvars/internal/testutil"
)

func byName(vars []core.Variable) map[string]core.Variable {
	out := make(map[string]core.Variable, len(vars))
	for _, v := range vars {
		out[v.Name] = v
	}
	return out
}

func TestResolver_UnfilteredLocalWins(t *testing.T) {
	s := testutil.NewExecutionTreeBuilder().
		Process("proc").Var("n", "global").Var("g", 1).
		Child("task", "proc").Var("n", "local").Var("l", 2).
		Build(t)
	r := NewResolver(s, s)

	vars, err := r.Resolve("task", core.ScopeUnspecified)
	require.NoError(t, err)

	m := byName(vars)
	require.Len(t, vars, 3, "no duplicate names")
	assert.Equal(t, "local", m["n"].Value)
	assert.Equal(t, core.ScopeLocal, m["n"].Scope)
	assert.Equal(t, 1, m["g"].Value)
	assert.Equal(t, core.ScopeGlobal, m["g"].Scope)
	assert.Equal(t, 2, m["l"].Value)
	for _, v := range vars {
		assert.Equal(t, "task", v.ExecutionID)
	}
}

func TestResolver_FilteredScopes(t *testing.T) {
	s := testutil.NewExecutionTreeBuilder().
		Process("proc").Var("n", "global").
		Child("task", "proc").Var("n", "local").Var("l", 2).
		Build(t)
	r := NewResolver(s, s)

	local, err := r.Resolve("task", core.ScopeLocal)
	require.NoError(t, err)
	rawLocal, _ := s.GetLocal("task")
	assert.Len(t, local, len(rawLocal))
	for _, v := range local {
		assert.Equal(t, rawLocal[v.Name], v.Value)
		assert.Equal(t, core.ScopeLocal, v.Scope)
	}

	global, err := r.Resolve("task", core.ScopeGlobal)
	require.NoError(t, err)
	rawGlobal, _ := s.GetGlobal("task")
	assert.Len(t, global, len(rawGlobal))
	for _, v := range global {
		assert.Equal(t, rawGlobal[v.Name], v.Value)
		assert.Equal(t, core.ScopeGlobal, v.Scope)
	}
}

func TestResolver_EmptyExecution(t *testing.T) {
	s := testutil.NewExecutionTreeBuilder().Process("proc").Build(t)
	r := NewResolver(s, s)

	vars, err := r.Resolve("proc", core.ScopeUnspecified)
	require.NoError(t, err)
	assert.NotNil(t, vars)
	assert.Empty(t, vars)
}

func TestResolver_Errors(t *testing.T) {
	s := testutil.NewExecutionTreeBuilder().Process("proc").Build(t)
	r := NewResolver(s, s)

	_, err := r.Resolve("missing", core.ScopeUnspecified)
	assert.True(t, core.IsNotFound(err))

	_, err = r.Resolve("proc", core.Scope("process"))
	assert.True(t, core.IsInvalidArgument(err))
}

func TestResolver_StoreReads(t *testing.T) {
	m := testutil.NewMockVariableStore()
	m.On("GetExecution", "e1").Return(core.Execution{ID: "e1", ParentID: "p"}, nil)
	m.On("GetLocal", "e1").Return(map[string]any{"a": 1}, nil).Once()
	m.On("GetGlobal", "e1").Return(nil, nil).Once()

	r := NewResolver(m, m)
	vars, err := r.Resolve("e1", core.ScopeUnspecified)
	require.NoError(t, err)
	assert.Len(t, vars, 1)
	m.AssertExpectations(t)

	m2 := testutil.NewMockVariableStore()
	m2.On("GetExecution", "e1").Return(core.Execution{ID: "e1"}, nil)
	m2.On("GetGlobal", "e1").Return(map[string]any{"g": true}, nil).Once()

	vars, err = NewResolver(m2, m2).Resolve("e1", core.ScopeGlobal)
	require.NoError(t, err)
	assert.Equal(t, []core.Variable{{Name: "g", Value: true, Scope: core.ScopeGlobal, ExecutionID: "e1"}}, vars)
	m2.AssertNotCalled(t, "GetLocal", "e1")
	m2.AssertExpectations(t)
}
