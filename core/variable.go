package core

import "fmt"

// Scope identifies where a variable lives relative to an execution.
type Scope string

const (
	// ScopeUnspecified is the zero value. Resolve treats it as "both scopes";
	// batch entries treat it as ScopeLocal.
	ScopeUnspecified Scope = ""
	// ScopeLocal addresses variables attached directly to the execution.
	ScopeLocal Scope = "local"
	// ScopeGlobal addresses variables of the owning process instance.
	ScopeGlobal Scope = "global"
)

// ParseScope converts user input into a Scope. The empty string yields
// ScopeUnspecified.
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case ScopeUnspecified, ScopeLocal, ScopeGlobal:
		return Scope(s), nil
	default:
		return ScopeUnspecified, NewInvalidArgumentError(fmt.Sprintf("invalid scope %q", s))
	}
}

// OrDefault returns ScopeLocal for an unspecified scope. An unspecified scope
// never inherits the scope of other entries in the same batch.
func (s Scope) OrDefault() Scope {
	if s == ScopeUnspecified {
		return ScopeLocal
	}
	return s
}

// Valid reports whether s is one of the known scopes (unspecified included).
func (s Scope) Valid() bool {
	return s == ScopeUnspecified || s == ScopeLocal || s == ScopeGlobal
}

func (s Scope) String() string {
	if s == ScopeUnspecified {
		return "unspecified"
	}
	return string(s)
}

// Variable is a resolved or written variable descriptor. Value is opaque to
// the core and passed through untouched; Type is a codec hint.
type Variable struct {
	Name        string `json:"name"`
	Value       any    `json:"value"`
	Type        string `json:"type,omitempty"`
	Scope       Scope  `json:"scope"`
	ExecutionID string `json:"executionId"`
}

// VariableEntry is one element of a batch write request.
type VariableEntry struct {
	Name  string
	Scope Scope
	Value any
	Type  string
}
