package mocks

import (
	"context"

	"github.com/mdmdirector/phonewatch/geelark"
	"github.com/mdmdirector/phonewatch/types"
)

// MockStatusClient - mock implementation of StatusClient for testing
type MockStatusClient struct {
	PhoneStatusFunc func(ctx context.Context, ids []string) (*types.StatusResponse, []byte, error)

	// Call tracking
	PhoneStatusCalls [][]string
}

// Ensure MockStatusClient implements StatusClient
var _ geelark.StatusClient = (*MockStatusClient)(nil)

// PhoneStatus implements StatusClient.PhoneStatus
func (m *MockStatusClient) PhoneStatus(ctx context.Context, ids []string) (*types.StatusResponse, []byte, error) {
	m.PhoneStatusCalls = append(m.PhoneStatusCalls, ids)
	if m.PhoneStatusFunc != nil {
		return m.PhoneStatusFunc(ctx, ids)
	}
	code := 0
	return &types.StatusResponse{Code: &code, Data: &types.StatusData{}}, []byte(`{"code":0,"data":{}}`), nil
}
