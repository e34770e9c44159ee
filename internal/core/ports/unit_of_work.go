package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command. Instances are never shared.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained from it
// run inside the transaction opened by Begin. Events recorded by aggregates
// that passed through its repositories are published after Commit succeeds.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback returns an error if no transaction is active. Calling it after a
	// successful Commit is harmless.
	Rollback(ctx context.Context) error

	ClientRepository() ClientRepository
	OrderRepository() OrderRepository
	DeliveryRepository() DeliveryRepository
	DeliveryTypeRepository() DeliveryTypeRepository
}
