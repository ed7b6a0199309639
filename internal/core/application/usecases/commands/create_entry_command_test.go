package commands_test

import (
	"testing"
	"time"

	"mandi/internal/core/application/usecases/commands"
	"mandi/internal/core/domain/model/entry"
	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/core/domain/model/role"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryDate() time.Time {
	return time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)
}

func validCreateEntryCommand(t *testing.T) commands.CreateEntryCommand {
	t.Helper()
	cmd, err := commands.NewCreateEntryCommand(
		role.Staff, kernel.NewUUID(), entryDate(),
		entry.NewSample, 100, entry.Packaging75kg, "sona masoori")
	require.NoError(t, err)
	return cmd
}

func TestNewCreateEntryCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		entryID := kernel.NewUUID()

		cmd, err := commands.NewCreateEntryCommand(
			role.Staff, entryID, entryDate(),
			entry.NewSample, 100, entry.Packaging75kg, "sona masoori")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, role.Staff, cmd.Actor())
		assert.True(t, cmd.EntryID().IsEqual(entryID))
		assert.Equal(t, entry.NewSample, cmd.EntryType())
		assert.Equal(t, 100, cmd.Bags())
		assert.Equal(t, entry.Packaging75kg, cmd.Packaging())
		assert.Equal(t, "sona masoori", cmd.Variety())
	})

	t.Run("should reject unknown role", func(t *testing.T) {
		_, err := commands.NewCreateEntryCommand(
			role.UnknownRole, kernel.NewUUID(), entryDate(),
			entry.NewSample, 100, entry.Packaging75kg, "sona masoori")

		require.Error(t, err)
	})

	t.Run("should reject invalid entry ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewCreateEntryCommand(
			role.Staff, invalidID, entryDate(),
			entry.NewSample, 100, entry.Packaging75kg, "sona masoori")

		require.Error(t, err)
	})

	t.Run("should reject zero entry date", func(t *testing.T) {
		_, err := commands.NewCreateEntryCommand(
			role.Staff, kernel.NewUUID(), time.Time{},
			entry.NewSample, 100, entry.Packaging75kg, "sona masoori")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "entryDate")
	})

	t.Run("should reject non-positive bags", func(t *testing.T) {
		_, err := commands.NewCreateEntryCommand(
			role.Staff, kernel.NewUUID(), entryDate(),
			entry.NewSample, 0, entry.Packaging75kg, "sona masoori")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "bags")
	})

	t.Run("should reject empty variety", func(t *testing.T) {
		_, err := commands.NewCreateEntryCommand(
			role.Staff, kernel.NewUUID(), entryDate(),
			entry.NewSample, 100, entry.Packaging75kg, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "variety")
	})

	t.Run("should collect multiple violations", func(t *testing.T) {
		_, err := commands.NewCreateEntryCommand(
			role.UnknownRole, kernel.NewUUID(), time.Time{},
			entry.NewSample, -1, entry.Packaging75kg, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "entryDate")
		assert.Contains(t, err.Error(), "bags")
		assert.Contains(t, err.Error(), "variety")
	})
}

func TestCreateEntryCommand_Validate(t *testing.T) {
	t.Run("should reject command created without constructor", func(t *testing.T) {
		var cmd commands.CreateEntryCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrCreateEntryCommandIsNotConstructed, err)
	})
}
