// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and lifecycle reactions (numbering, notification dispatch).
package commands

import (
	"context"

	"commerce/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// NotificationRuleRepoFactory provides access to the notification rule
	// repository within a transaction.
	NotificationRuleRepoFactory interface {
		NotificationRuleRepository() ports.NotificationRuleRepository
	}

	// OrderUoW manages transactions for order lifecycle operations. Every
	// handler needs both repositories: the order store for writes and the rule
	// store for post-write notification dispatch.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		NotificationRuleRepoFactory
	}

	// OrderUoWFactory creates new unit of work instances, one per command.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
