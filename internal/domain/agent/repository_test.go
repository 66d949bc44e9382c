package agent

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (_m *MockRepository) Save(ctx context.Context, agent *Agent) error {
	ret := _m.Called(ctx, agent)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *Agent) error); ok {
		r0 = rf(ctx, agent)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

func (_m *MockRepository) FindByID(ctx context.Context, agentID int64) (*Agent, error) {
	ret := _m.Called(ctx, agentID)

	var r0 *Agent
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Agent)
	}
	return r0, ret.Error(1)
}

func (_m *MockRepository) FindAll(ctx context.Context) ([]*Agent, error) {
	ret := _m.Called(ctx)

	var r0 []*Agent
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*Agent)
	}
	return r0, ret.Error(1)
}

func (_m *MockRepository) Delete(ctx context.Context, agentID int64) error {
	ret := _m.Called(ctx, agentID)
	return ret.Error(0)
}
