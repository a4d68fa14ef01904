package testutil

import (
	"github.com/stretchr/testify/mock"

	"github.com/hupe1980/procvars/core"
)

// MockVariableStore is a testify mock implementing core.VariableStore and
// core.ExecutionLookup. Use it to assert the exact store calls issued.
type MockVariableStore struct {
	mock.Mock
}

// NewMockVariableStore returns an empty mock; register expectations with On.
func NewMockVariableStore() *MockVariableStore {
	return &MockVariableStore{}
}

func (m *MockVariableStore) GetExecution(executionID string) (core.Execution, error) {
	args := m.Called(executionID)
	return args.Get(0).(core.Execution), args.Error(1)
}

func (m *MockVariableStore) GetLocal(executionID string) (map[string]any, error) {
	args := m.Called(executionID)
	return mapArg(args, 0), args.Error(1)
}

func (m *MockVariableStore) SetLocal(executionID string, vars map[string]any) error {
	args := m.Called(executionID, vars)
	return args.Error(0)
}

func (m *MockVariableStore) RemoveLocal(executionID string, names []string) error {
	args := m.Called(executionID, names)
	return args.Error(0)
}

func (m *MockVariableStore) GetGlobal(executionID string) (map[string]any, error) {
	args := m.Called(executionID)
	return mapArg(args, 0), args.Error(1)
}

func (m *MockVariableStore) SetGlobal(ownerExecutionID string, vars map[string]any) error {
	args := m.Called(ownerExecutionID, vars)
	return args.Error(0)
}

func mapArg(args mock.Arguments, i int) map[string]any {
	if v := args.Get(i); v != nil {
		return v.(map[string]any)
	}
	return nil
}
