package area

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (_m *MockRepository) Save(ctx context.Context, area *Area) error {
	ret := _m.Called(ctx, area)
	return ret.Error(0)
}

func (_m *MockRepository) FindByID(ctx context.Context, areaID int64) (*Area, error) {
	ret := _m.Called(ctx, areaID)

	var r0 *Area
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Area)
	}
	return r0, ret.Error(1)
}

func (_m *MockRepository) FindAll(ctx context.Context, agentID int64) ([]*Area, error) {
	ret := _m.Called(ctx, agentID)

	var r0 []*Area
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*Area)
	}
	return r0, ret.Error(1)
}

func (_m *MockRepository) Delete(ctx context.Context, areaID int64) error {
	ret := _m.Called(ctx, areaID)
	return ret.Error(0)
}
