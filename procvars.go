// Package procvars provides a high-level façade over the scope resolver and
// batch mutator for execution variables of a process-instance tree. Most
// applications interact with this package by:
//  1. Creating a ProcVars via New() (optionally overriding the default in‑memory store)
//  2. Reading the effective variables of an execution (Variables)
//  3. Creating or updating variables in batches (CreateVariables, CreateOrUpdateVariables)
//
// The façade delegates validation and routing to scope.Resolver and
// scope.Mutator while keeping setup concise. All defaults are safe for local
// development and testing; production deployments typically supply a durable
// store implementation and a structured logger.
package procvars

import (
	"github.com/hupe1980/procvars/core"
	"github.com/hupe1980/procvars/logging"
	"github.com/hupe1980/procvars/scope"
	"github.com/hupe1980/procvars/store"
)

// Options configures the ProcVars instance.
type Options struct {
	// Backend stores variables and resolves executions (defaults to
	// store.NewInMemoryStore()).
	Backend core.Backend

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// ProcVars is the high-level façade aggregating resolver and mutator.
type ProcVars struct {
	opts     Options
	resolver *scope.Resolver
	mutator  *scope.Mutator
}

// New creates a new ProcVars instance with optional overrides.
func New(optFns ...func(o *Options)) *ProcVars {
	opts := Options{
		Backend: store.NewInMemoryStore(),
		Logger:  logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	return &ProcVars{
		opts: opts,
		resolver: scope.NewResolver(opts.Backend, opts.Backend, func(o *scope.ResolverOptions) {
			o.Logger = opts.Logger
		}),
		mutator: scope.NewMutator(opts.Backend, opts.Backend, func(o *scope.MutatorOptions) {
			o.Logger = opts.Logger
		}),
	}
}

// Variables returns the variables of an execution. ScopeUnspecified merges
// local and global variables with local ones taking precedence.
func (p *ProcVars) Variables(executionID string, sc core.Scope) ([]core.Variable, error) {
	return p.resolver.Resolve(executionID, sc)
}

// CreateVariables creates a batch of variables, failing with a
// *core.ConflictError when one already exists in the target scope.
func (p *ProcVars) CreateVariables(executionID string, entries []core.VariableEntry) ([]core.Variable, error) {
	return p.mutator.Apply(executionID, entries, false)
}

// CreateOrUpdateVariables writes a batch of variables, overwriting existing ones.
func (p *ProcVars) CreateOrUpdateVariables(executionID string, entries []core.VariableEntry) ([]core.Variable, error) {
	return p.mutator.Apply(executionID, entries, true)
}

// SetBinaryVariable stores raw data as a local variable of the execution.
func (p *ProcVars) SetBinaryVariable(executionID, name string, data []byte) (core.Variable, error) {
	return p.mutator.SetBinary(executionID, name, data)
}

// DeleteAllLocalVariables removes every local variable of the execution.
func (p *ProcVars) DeleteAllLocalVariables(executionID string) error {
	return p.mutator.ClearAllLocal(executionID)
}

// Backend returns the configured backend.
func (p *ProcVars) Backend() core.Backend { return p.opts.Backend }

// Resolver returns the underlying resolver.
func (p *ProcVars) Resolver() *scope.Resolver { return p.resolver }

// Mutator returns the underlying mutator.
func (p *ProcVars) Mutator() *scope.Mutator { return p.mutator }
