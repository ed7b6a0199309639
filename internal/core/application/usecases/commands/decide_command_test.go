package commands_test

import (
	"testing"

	"mandi/internal/core/application/usecases/commands"
	"mandi/internal/core/domain/model/entry"
	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/core/domain/model/role"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDecideCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		entryID := kernel.NewUUID()

		cmd, err := commands.NewDecideCommand(role.Owner, entryID, entry.PassWithCook)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, role.Owner, cmd.Actor())
		assert.True(t, cmd.EntryID().IsEqual(entryID))
		assert.Equal(t, entry.PassWithCook, cmd.Decision())
	})

	t.Run("should reject unknown role", func(t *testing.T) {
		_, err := commands.NewDecideCommand(role.UnknownRole, kernel.NewUUID(), entry.PassNoCook)

		require.Error(t, err)
	})

	t.Run("should reject invalid entry ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewDecideCommand(role.Owner, invalidID, entry.PassNoCook)

		require.Error(t, err)
	})

	t.Run("should reject pending decision", func(t *testing.T) {
		_, err := commands.NewDecideCommand(role.Owner, kernel.NewUUID(), entry.DecisionPending)

		require.Error(t, err)
	})
}

func TestDecideCommand_Validate(t *testing.T) {
	t.Run("should reject command created without constructor", func(t *testing.T) {
		var cmd commands.DecideCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrDecideCommandIsNotConstructed, err)
	})
}
