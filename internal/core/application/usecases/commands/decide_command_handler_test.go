package commands_test

import (
	"errors"
	"testing"

	"mandi/internal/core/application/usecases/commands"
	"mandi/internal/core/domain/model/entry"
	"mandi/internal/core/domain/model/grading"
	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/core/domain/model/role"
	"mandi/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func gradedEntry(t *testing.T) *entry.Entry {
	t.Helper()

	e, err := entry.NewEntry(kernel.NewUUID(), entryDate(),
		entry.NewSample, 100, entry.Packaging75kg, "sona masoori")
	require.NoError(t, err)

	g, err := grading.NewGradingResult(kernel.NewUUID(),
		decimal.NewFromFloat(13.5),
		decimal.NewFromInt(62), decimal.NewFromInt(4),
		decimal.NewFromInt(60), decimal.NewFromInt(5),
		nil, nil, "grader-1")
	require.NoError(t, err)
	require.NoError(t, e.AttachGrading(g))

	return e
}

func TestDecideCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	e := gradedEntry(t)
	cmd, err := commands.NewDecideCommand(role.Owner, e.ID(), entry.PassNoCook)
	require.NoError(t, err)

	repo := new(MockEntryRepository)
	uow := new(MockEntryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("EntryRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, e.ID()).Return(e, nil).Once(),
		repo.On("Update", mock.Anything, e).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEntryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDecideCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, entry.StatusPricing, e.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestDecideCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.DecideCommand{} // not constructed properly
	factory := new(MockEntryUoWFactory)
	h := commands.NewDecideCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestDecideCommandHandler_Handle_UnauthorizedError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDecideCommand(role.Staff, kernel.NewUUID(), entry.PassNoCook)
	require.NoError(t, err)

	factory := new(MockEntryUoWFactory)
	h := commands.NewDecideCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	factory.AssertNotCalled(t, "Create")
}

func TestDecideCommandHandler_Handle_GetError(t *testing.T) {
	ctx := t.Context()
	entryID := kernel.NewUUID()
	cmd, err := commands.NewDecideCommand(role.Owner, entryID, entry.PassNoCook)
	require.NoError(t, err)

	repo := new(MockEntryRepository)
	uow := new(MockEntryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("EntryRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, entryID).
			Return(nil, errs.NewObjectNotFoundError("entry", entryID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEntryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDecideCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDecideCommandHandler_Handle_TransitionError(t *testing.T) {
	ctx := t.Context()
	e, err := entry.NewEntry(kernel.NewUUID(), entryDate(),
		entry.NewSample, 100, entry.Packaging75kg, "sona masoori")
	require.NoError(t, err)
	cmd, err := commands.NewDecideCommand(role.Owner, e.ID(), entry.PassNoCook)
	require.NoError(t, err)

	repo := new(MockEntryRepository)
	uow := new(MockEntryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("EntryRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, e.ID()).Return(e, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEntryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDecideCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Equal(t, entry.StatusIntake, e.Status())
	repo.AssertNotCalled(t, "Update")
}

func TestDecideCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	e := gradedEntry(t)
	cmd, err := commands.NewDecideCommand(role.Owner, e.ID(), entry.Rejected)
	require.NoError(t, err)

	repo := new(MockEntryRepository)
	uow := new(MockEntryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("EntryRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, e.ID()).Return(e, nil).Once(),
		repo.On("Update", mock.Anything, e).Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEntryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDecideCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDecideCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	e := gradedEntry(t)
	cmd, err := commands.NewDecideCommand(role.Admin, e.ID(), entry.PassWithCook)
	require.NoError(t, err)

	repo := new(MockEntryRepository)
	uow := new(MockEntryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("EntryRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, e.ID()).Return(e, nil).Once(),
		repo.On("Update", mock.Anything, e).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEntryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDecideCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
