package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScope(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Scope
	}{
		{"", ScopeUnspecified},
		{"local", ScopeLocal},
		{"global", ScopeGlobal},
	} {
		got, err := ParseScope(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}

	_, err := ParseScope("process")
	assert.True(t, IsInvalidArgument(err))
}

func TestScope_OrDefault(t *testing.T) {
	assert.Equal(t, ScopeLocal, ScopeUnspecified.OrDefault())
	assert.Equal(t, ScopeLocal, ScopeLocal.OrDefault())
	assert.Equal(t, ScopeGlobal, ScopeGlobal.OrDefault())
	assert.False(t, Scope("other").Valid())
}

func TestExecution_IsRoot(t *testing.T) {
	assert.True(t, Execution{ID: "p"}.IsRoot())
	assert.False(t, Execution{ID: "c", ParentID: "p"}.IsRoot())
}

func TestErrors_UnwrapToSentinels(t *testing.T) {
	nf := fmt.Errorf("lookup: %w", NewNotFoundError("e1"))
	assert.True(t, IsNotFound(nf))
	assert.Contains(t, nf.Error(), "'e1'")

	var target *NotFoundError
	require.True(t, errors.As(nf, &target))
	assert.Equal(t, "e1", target.ExecutionID)

	conflict := &ConflictError{Name: "x", ExecutionID: "e1"}
	assert.True(t, IsConflict(conflict))
	assert.False(t, IsInvalidArgument(conflict))
	assert.Equal(t, "variable 'x' is already present on execution 'e1'", conflict.Error())

	inv := NewInvalidArgumentError("name is required")
	assert.True(t, IsInvalidArgument(inv))
	assert.Equal(t, "name is required", inv.Error())
}
