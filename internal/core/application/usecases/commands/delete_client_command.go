package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrDeleteClientCommandIsNotConstructed = errors.New(
	"DeleteClientCommand must be created via NewDeleteClientCommand constructor",
)

// DeleteClientCommand removes a client that no longer has orders.
type DeleteClientCommand struct {
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteClientCommand(clientID kernel.UUID) (DeleteClientCommand, error) {
	if err := clientID.Validate(); err != nil {
		return DeleteClientCommand{}, err
	}
	return DeleteClientCommand{clientID: clientID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteClientCommand) Validate() error {
	return c.guard.Validate(ErrDeleteClientCommandIsNotConstructed)
}

func (c DeleteClientCommand) ClientID() kernel.UUID {
	return c.clientID
}
