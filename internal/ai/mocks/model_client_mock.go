package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"arch_ai_server/internal/ai"
)

// MockModelClient is a mock type for the ModelClient type
type MockModelClient struct {
	mock.Mock
}

// GenerateStructured provides a mock function with given fields: ctx, prompt
func (_m *MockModelClient) GenerateStructured(ctx context.Context, prompt string) (string, error) {
	ret := _m.Called(ctx, prompt)

	var r0 string
	if rf, ok := ret.Get(0).(func(context.Context, string) string); ok {
		r0 = rf(ctx, prompt)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(string)
		}
	}

	return r0, ret.Error(1)
}

// GenerateImage provides a mock function with given fields: ctx, prompt
func (_m *MockModelClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	ret := _m.Called(ctx, prompt)

	var r0 string
	if rf, ok := ret.Get(0).(func(context.Context, string) string); ok {
		r0 = rf(ctx, prompt)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(string)
		}
	}

	return r0, ret.Error(1)
}

// NewMockModelClient creates a new instance of MockModelClient. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockModelClient(t interface {
	mock.TestingT
	Helper()
}) *MockModelClient {
	m := &MockModelClient{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ ai.ModelClient = (*MockModelClient)(nil)
