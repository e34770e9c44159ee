// Package commands contains the operations that modify freight state.
// Every command is a validated value built by its constructor; every handler
// runs inside its own unit of work and returns repository errors unchanged.
package commands

import (
	"context"

	"freight/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	DeliveryTypeRepoFactory interface {
		DeliveryTypeRepository() ports.DeliveryTypeRepository
	}

	// OrderUoW covers the order/delivery pair written by CreateOrder and DeleteOrder.
	//
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//   ... uow.OrderRepository().Add, uow.DeliveryRepository().Add
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
		DeliveryTypeRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	ClientUoW interface {
		TxManager
		ClientRepoFactory
	}

	ClientUoWFactory interface {
		Create() ClientUoW
	}

	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}
)
