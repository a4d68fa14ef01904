package scope

import (
	"maps"
	"slices"

	"github.com/hupe1980/procvars/core"
)

// Overlay merges global and local variables into a single view with one entry
// per name. Local variables take precedence; a global variable is only kept
// when no local variable of the same name exists. Neither input is modified.
// The result lists local variables first, followed by the remaining globals,
// each in input order.
func Overlay(local, global []core.Variable) []core.Variable {
	seen := make(map[string]struct{}, len(local))
	out := make([]core.Variable, 0, len(local)+len(global))
	for _, v := range local {
		if _, dup := seen[v.Name]; dup {
			continue
		}
		seen[v.Name] = struct{}{}
		out = append(out, v)
	}
	for _, v := range global {
		if _, shadowed := seen[v.Name]; shadowed {
			continue
		}
		seen[v.Name] = struct{}{}
		out = append(out, v)
	}
	return out
}

// toVariables converts a raw store mapping into descriptors sorted by name.
func toVariables(raw map[string]any, sc core.Scope, executionID string) []core.Variable {
	names := slices.Sorted(maps.Keys(raw))
	vars := make([]core.Variable, 0, len(names))
	for _, name := range names {
		vars = append(vars, core.Variable{Name: name, Value: raw[name], Scope: sc, ExecutionID: executionID})
	}
	return vars
}
