package service

import (
	"context"

	"ministerios/internal/ministerio/model"
	"ministerios/internal/ministerio/repository"

	"github.com/stretchr/testify/mock"
)

// MockMinisterioRepository is a mock implementation of repository.MinisterioRepository for testing.
type MockMinisterioRepository struct {
	mock.Mock
}

func (m *MockMinisterioRepository) Create(ctx context.Context, fields model.MinisterioFields) (*model.Ministerio, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ministerio), args.Error(1)
}

func (m *MockMinisterioRepository) FindByID(ctx context.Context, id string) (*model.Ministerio, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ministerio), args.Error(1)
}

func (m *MockMinisterioRepository) Update(ctx context.Context, id string, patch model.MinisterioPatch) (*model.Ministerio, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ministerio), args.Error(1)
}

func (m *MockMinisterioRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMinisterioRepository) Query(ctx context.Context, filter model.MinisterioFilter) (repository.Iterator, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.Iterator), args.Error(1)
}

func (m *MockMinisterioRepository) List(ctx context.Context, filter model.MinisterioFilter) ([]*model.Ministerio, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Ministerio), args.Error(1)
}

func (m *MockMinisterioRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
