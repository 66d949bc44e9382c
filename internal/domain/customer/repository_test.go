package customer

import (
	"context"

	"cable-billing/internal/domain/connection"

	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (_m *MockRepository) CreateWithConnection(ctx context.Context, cust *Customer, conn *connection.Connection) error {
	ret := _m.Called(ctx, cust, conn)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *Customer, *connection.Connection) error); ok {
		r0 = rf(ctx, cust, conn)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

func (_m *MockRepository) Update(ctx context.Context, cust *Customer) error {
	ret := _m.Called(ctx, cust)
	return ret.Error(0)
}

func (_m *MockRepository) FindByID(ctx context.Context, customerID int64) (*Customer, error) {
	ret := _m.Called(ctx, customerID)

	var r0 *Customer
	if rf, ok := ret.Get(0).(func(context.Context, int64) *Customer); ok {
		r0 = rf(ctx, customerID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockRepository) FindAll(ctx context.Context, areaID int64) ([]*Customer, error) {
	ret := _m.Called(ctx, areaID)

	var r0 []*Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockRepository) Delete(ctx context.Context, customerID int64) error {
	ret := _m.Called(ctx, customerID)
	return ret.Error(0)
}
