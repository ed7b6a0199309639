package commands_test

import (
	"context"

	"mandi/internal/core/application/usecases/commands"
	"mandi/internal/core/domain/model/entry"
	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockEntryRepository struct{ mock.Mock }

func (m *MockEntryRepository) Add(ctx context.Context, aggregate *entry.Entry) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockEntryRepository) Update(ctx context.Context, aggregate *entry.Entry) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockEntryRepository) Get(ctx context.Context, id kernel.UUID) (*entry.Entry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entry.Entry), args.Error(1)
}

func (m *MockEntryRepository) GetAllInStatus(ctx context.Context, status entry.Status) ([]*entry.Entry, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entry.Entry), args.Error(1)
}

type MockEntryUoW struct{ mock.Mock }

func (m *MockEntryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEntryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEntryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEntryUoW) EntryRepository() ports.EntryRepository {
	args := m.Called()
	return args.Get(0).(ports.EntryRepository)
}

type MockEntryUoWFactory struct{ mock.Mock }

func (m *MockEntryUoWFactory) Create() commands.EntryUoW {
	args := m.Called()
	return args.Get(0).(commands.EntryUoW)
}

type MockVarietyCatalog struct{ mock.Mock }

func (m *MockVarietyCatalog) Exists(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}
