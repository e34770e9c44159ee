package ports

import (
	"context"

	"freight/internal/core/domain/model/client"
	"freight/internal/core/domain/model/kernel"
)

// ClientRepository persists client aggregates.
type ClientRepository interface {
	// Add inserts a client. A duplicate CPF or email surfaces as errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *client.Client) error

	Get(ctx context.Context, id kernel.UUID) (*client.Client, error)

	ExistsByCPF(ctx context.Context, cpf string) (bool, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Delete removes a client. While orders still reference it the store
	// refuses with errs.ReferenceNotFoundError naming orders_client_id_fkey.
	Delete(ctx context.Context, id kernel.UUID) error
}
