package connection

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (_m *MockRepository) Create(ctx context.Context, conn *Connection) error {
	ret := _m.Called(ctx, conn)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *Connection) error); ok {
		r0 = rf(ctx, conn)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

func (_m *MockRepository) FindByID(ctx context.Context, connectionID int64) (*Connection, error) {
	ret := _m.Called(ctx, connectionID)

	var r0 *Connection
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Connection)
	}
	return r0, ret.Error(1)
}

func (_m *MockRepository) FindByCustomer(ctx context.Context, customerID int64) ([]*Connection, error) {
	ret := _m.Called(ctx, customerID)

	var r0 []*Connection
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*Connection)
	}
	return r0, ret.Error(1)
}

func (_m *MockRepository) FindActiveIDs(ctx context.Context) ([]int64, error) {
	ret := _m.Called(ctx)

	var r0 []int64
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]int64)
	}
	return r0, ret.Error(1)
}
