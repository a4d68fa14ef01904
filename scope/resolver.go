package scope

import (
	"fmt"
	"time"

	"github.com/hupe1980/procvars/core"
	"github.com/hupe1980/procvars/logging"
)

// ResolverOptions configures a Resolver.
type ResolverOptions struct {
	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Resolver computes the effective variable view of an execution.
type Resolver struct {
	store  core.VariableStore
	lookup core.ExecutionLookup
	logger logging.Logger
}

// NewResolver creates a Resolver reading from store and validating execution
// ids through lookup.
func NewResolver(store core.VariableStore, lookup core.ExecutionLookup, optFns ...func(o *ResolverOptions)) *Resolver {
	opts := ResolverOptions{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Resolver{store: store, lookup: lookup, logger: nonNilLogger(opts.Logger)}
}

// Resolve returns the variables of an execution.
//
// With ScopeUnspecified the local and global maps are overlaid and a name
// present in both yields the local variable. ScopeLocal and ScopeGlobal return
// the respective map without overlay. An execution without variables yields an
// empty, non-nil slice.
func (r *Resolver) Resolve(executionID string, filter core.Scope) ([]core.Variable, error) {
	start := time.Now()

	if !filter.Valid() {
		return nil, core.NewInvalidArgumentError(fmt.Sprintf("invalid scope %q", string(filter)))
	}
	if _, err := r.lookup.GetExecution(executionID); err != nil {
		return nil, err
	}

	var (
		result []core.Variable
		err    error
	)
	switch filter {
	case core.ScopeLocal, core.ScopeGlobal:
		result, err = r.scoped(executionID, filter)
	default:
		result, err = r.overlaid(executionID)
	}
	if err != nil {
		return nil, err
	}

	logResolve(r.logger, executionID, filter.String(), len(result), time.Since(start))
	return result, nil
}

func (r *Resolver) scoped(executionID string, sc core.Scope) ([]core.Variable, error) {
	raw, err := readScope(r.store, executionID, sc)
	if err != nil {
		return nil, err
	}
	return toVariables(raw, sc, executionID), nil
}

func (r *Resolver) overlaid(executionID string) ([]core.Variable, error) {
	local, err := r.scoped(executionID, core.ScopeLocal)
	if err != nil {
		return nil, err
	}
	global, err := r.scoped(executionID, core.ScopeGlobal)
	if err != nil {
		return nil, err
	}
	return Overlay(local, global), nil
}
