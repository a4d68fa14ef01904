package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/procvars/core"
)

func TestOverlay_LocalWins(t *testing.T) {
	local := []core.Variable{
		{Name: "a", Value: "local-a", Scope: core.ScopeLocal},
		{Name: "shared", Value: "local", Scope: core.ScopeLocal},
	}
	global := []core.Variable{
		{Name: "shared", Value: "global", Scope: core.ScopeGlobal},
		{Name: "z", Value: "global-z", Scope: core.ScopeGlobal},
	}

	got := Overlay(local, global)

	assert.Equal(t, []core.Variable{
		{Name: "a", Value: "local-a", Scope: core.ScopeLocal},
		{Name: "shared", Value: "local", Scope: core.ScopeLocal},
		{Name: "z", Value: "global-z", Scope: core.ScopeGlobal},
	}, got)
}

func TestOverlay_DoesNotMutateInputs(t *testing.T) {
	local := []core.Variable{{Name: "a", Value: 1}}
	global := []core.Variable{{Name: "a", Value: 2}, {Name: "b", Value: 3}}

	got := Overlay(local, global)
	got[0].Value = 100

	assert.Equal(t, 1, local[0].Value)
	assert.Len(t, global, 2)
}

func TestOverlay_Empty(t *testing.T) {
	got := Overlay(nil, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
