package core

// Execution is a node in a process-instance runtime tree. An execution with an
// empty ParentID is a process instance (root).
type Execution struct {
	ID       string `json:"id"`
	ParentID string `json:"parentId,omitempty"`
}

// IsRoot reports whether the execution is a process instance.
func (e Execution) IsRoot() bool {
	return e.ParentID == ""
}
