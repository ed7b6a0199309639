// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, role authorization,
// transaction management, and persistence.
package commands

import (
	"context"

	"mandi/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// EntryRepoFactory provides access to the entry repository within a
	// transaction.
	EntryRepoFactory interface {
		EntryRepository() ports.EntryRepository
	}

	// EntryUoW manages transactions over the entry aggregate. Every workflow
	// operation loads one entry, mutates it and writes it back atomically.
	EntryUoW interface {
		TxManager
		EntryRepoFactory
	}

	// EntryUoWFactory creates new entry unit of work instances.
	EntryUoWFactory interface {
		Create() EntryUoW
	}
)
