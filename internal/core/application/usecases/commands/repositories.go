// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"boozebuddies/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// OrderDeliveryUoW manages transactions spanning the order and delivery
	// aggregates. Used by order creation, status updates, and cancellation,
	// which all read or write the paired delivery.
	OrderDeliveryUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
	}

	// OrderDeliveryUoWFactory creates OrderDeliveryUoW instances.
	OrderDeliveryUoWFactory interface {
		Create() OrderDeliveryUoW
	}

	// DeliveryUoW manages transactions for delivery-only operations.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
	}

	// DeliveryUoWFactory creates DeliveryUoW instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// DispatchUoW manages transactions for driver assignment, which touches
	// orders, deliveries, and drivers atomically.
	DispatchUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
		DriverRepoFactory
	}

	// DispatchUoWFactory creates DispatchUoW instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}
)
