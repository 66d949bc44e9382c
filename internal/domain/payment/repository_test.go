package payment

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (_m *MockRepository) Create(ctx context.Context, p *Payment) error {
	ret := _m.Called(ctx, p)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *Payment) error); ok {
		r0 = rf(ctx, p)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

func (_m *MockRepository) FindByConnection(ctx context.Context, connectionID int64) ([]Payment, error) {
	ret := _m.Called(ctx, connectionID)
	return paymentsOrNil(ret.Get(0)), ret.Error(1)
}

func (_m *MockRepository) FindByCustomer(ctx context.Context, customerID int64) ([]Payment, error) {
	ret := _m.Called(ctx, customerID)
	return paymentsOrNil(ret.Get(0)), ret.Error(1)
}

func (_m *MockRepository) FindAll(ctx context.Context) ([]Payment, error) {
	ret := _m.Called(ctx)
	return paymentsOrNil(ret.Get(0)), ret.Error(1)
}

func (_m *MockRepository) SumByConnection(ctx context.Context, connectionID int64) (int64, error) {
	ret := _m.Called(ctx, connectionID)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *MockRepository) FindRecentByCustomer(ctx context.Context, customerID int64, limit int) ([]Payment, error) {
	ret := _m.Called(ctx, customerID, limit)
	return paymentsOrNil(ret.Get(0)), ret.Error(1)
}

func paymentsOrNil(v any) []Payment {
	if v == nil {
		return nil
	}
	return v.([]Payment)
}
