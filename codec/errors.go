package codec

import (
	"fmt"

	"github.com/hupe1980/procvars/core"
)

// DecodeError reports a malformed wire variable. It matches
// core.ErrInvalidArgument with errors.Is.
type DecodeError struct {
	Name string
	Type string
	Err  error
}

func (e *DecodeError) Error() string {
	switch {
	case e.Name == "":
		return fmt.Sprintf("malformed variable payload: %v", e.Err)
	case e.Type == "":
		return fmt.Sprintf("invalid value for variable '%s': %v", e.Name, e.Err)
	default:
		return fmt.Sprintf("invalid value for variable '%s' of type '%s': %v", e.Name, e.Type, e.Err)
	}
}

func (e *DecodeError) Unwrap() []error {
	if e.Err == nil {
		return []error{core.ErrInvalidArgument}
	}
	return []error{core.ErrInvalidArgument, e.Err}
}
