package risk

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockProfileReader struct {
	mock.Mock
}

func (_m *MockProfileReader) LoadProfile(ctx context.Context, customerID int64) (*Profile, error) {
	ret := _m.Called(ctx, customerID)

	var r0 *Profile
	if rf, ok := ret.Get(0).(func(context.Context, int64) *Profile); ok {
		r0 = rf(ctx, customerID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Profile)
	}
	return r0, ret.Error(1)
}

type MockModelSource struct {
	mock.Mock
}

func (_m *MockModelSource) DelayModel(ctx context.Context) (Model, error) {
	ret := _m.Called(ctx)

	var r0 Model
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(Model)
	}
	return r0, ret.Error(1)
}

func (_m *MockModelSource) DefaultModel(ctx context.Context) (Model, error) {
	ret := _m.Called(ctx)

	var r0 Model
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(Model)
	}
	return r0, ret.Error(1)
}

func (_m *MockModelSource) Scaler(ctx context.Context) (Scaler, error) {
	ret := _m.Called(ctx)

	var r0 Scaler
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(Scaler)
	}
	return r0, ret.Error(1)
}

// ConstantModel always predicts Value.
type ConstantModel struct {
	Value float64
	Seen  []float64
}

func (m *ConstantModel) Predict(_ context.Context, features []float64) (float64, error) {
	m.Seen = append([]float64(nil), features...)
	return m.Value, nil
}
