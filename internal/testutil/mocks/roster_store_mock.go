package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/fergusquiz/internal/models"
)

// MockRosterStore is a mock implementation of repository.RosterStore
type MockRosterStore struct {
	mock.Mock
}

func (m *MockRosterStore) LoadAll(ctx context.Context) ([]models.Student, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Student), args.Error(1)
}

func (m *MockRosterStore) SaveAll(ctx context.Context, students []models.Student) error {
	args := m.Called(ctx, students)
	return args.Error(0)
}
