package billing

import (
	"context"

	"cable-billing/internal/domain/connection"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type TxMock struct {
	pgx.Tx
}

type MockRepository struct {
	mock.Mock
}

func (_m *MockRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	ret := _m.Called(ctx)

	var r0 pgx.Tx
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(pgx.Tx)
	}
	return r0, ret.Error(1)
}

func (_m *MockRepository) CommitTx(ctx context.Context, tx pgx.Tx) error {
	ret := _m.Called(ctx, tx)
	return ret.Error(0)
}

func (_m *MockRepository) RollbackTx(ctx context.Context, tx pgx.Tx) error {
	ret := _m.Called(ctx, tx)
	return ret.Error(0)
}

func (_m *MockRepository) LockConnectionInTx(ctx context.Context, tx pgx.Tx, connectionID int64) (*connection.Connection, error) {
	ret := _m.Called(ctx, tx, connectionID)

	var r0 *connection.Connection
	if rf, ok := ret.Get(0).(func(context.Context, pgx.Tx, int64) *connection.Connection); ok {
		r0 = rf(ctx, tx, connectionID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*connection.Connection)
	}
	return r0, ret.Error(1)
}

func (_m *MockRepository) SetConnectionActiveInTx(ctx context.Context, tx pgx.Tx, connectionID int64, active bool) error {
	ret := _m.Called(ctx, tx, connectionID, active)
	return ret.Error(0)
}

func (_m *MockRepository) FindLatestBillInTx(ctx context.Context, tx pgx.Tx, connectionID int64) (*Bill, error) {
	ret := _m.Called(ctx, tx, connectionID)

	var r0 *Bill
	if rf, ok := ret.Get(0).(func(context.Context, pgx.Tx, int64) *Bill); ok {
		r0 = rf(ctx, tx, connectionID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Bill)
	}
	return r0, ret.Error(1)
}

func (_m *MockRepository) InsertBillInTx(ctx context.Context, tx pgx.Tx, bill *Bill) error {
	ret := _m.Called(ctx, tx, bill)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, pgx.Tx, *Bill) error); ok {
		r0 = rf(ctx, tx, bill)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

func (_m *MockRepository) FindBillsByConnection(ctx context.Context, connectionID int64) ([]Bill, error) {
	ret := _m.Called(ctx, connectionID)

	var r0 []Bill
	if rf, ok := ret.Get(0).(func(context.Context, int64) []Bill); ok {
		r0 = rf(ctx, connectionID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]Bill)
	}
	return r0, ret.Error(1)
}

type MockPaymentTotals struct {
	mock.Mock
}

func (_m *MockPaymentTotals) SumByConnection(ctx context.Context, connectionID int64) (int64, error) {
	ret := _m.Called(ctx, connectionID)
	return ret.Get(0).(int64), ret.Error(1)
}

type MockConnectionFinder struct {
	mock.Mock
}

func (_m *MockConnectionFinder) FindByCustomer(ctx context.Context, customerID int64) ([]*connection.Connection, error) {
	ret := _m.Called(ctx, customerID)

	var r0 []*connection.Connection
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*connection.Connection)
	}
	return r0, ret.Error(1)
}
