package commands

import (
	"context"

	"freight/internal/core/domain/model/client"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

// RegisterClientCommandHandler resolves the client's address and stores the client.
// The address lookup happens before the transaction opens.
type RegisterClientCommandHandler struct {
	uowFactory ClientUoWFactory
	resolver   ports.AddressResolver
}

func NewRegisterClientCommandHandler(
	uowFactory ClientUoWFactory,
	resolver ports.AddressResolver,
) RegisterClientCommandHandler {
	return RegisterClientCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
	}
}

// Handle returns the new client id. A CPF or email already in use yields
// errs.ObjectAlreadyExistsError.
func (h *RegisterClientCommandHandler) Handle(ctx context.Context, cmd RegisterClientCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	addr, err := h.resolver.Resolve(ctx, cmd.PostalCode())
	if err != nil {
		return kernel.UUID{}, err
	}

	c, err := client.NewClient(kernel.NewUUID(), cmd.Name(), cmd.CPF(), cmd.Email(), cmd.Phone(), addr)
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ClientRepository()

	exists, err := repo.ExistsByCPF(ctx, c.CPF())
	if err != nil {
		return kernel.UUID{}, err
	}
	if exists {
		return kernel.UUID{}, errs.NewObjectAlreadyExistsError("cpf", c.CPF())
	}

	exists, err = repo.ExistsByEmail(ctx, c.Email())
	if err != nil {
		return kernel.UUID{}, err
	}
	if exists {
		return kernel.UUID{}, errs.NewObjectAlreadyExistsError("email", c.Email())
	}

	if err = repo.Add(ctx, c); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return c.ID(), nil
}
