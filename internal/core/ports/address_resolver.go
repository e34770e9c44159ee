package ports

import (
	"context"

	"freight/internal/core/domain/model/address"
)

// AddressResolver turns a raw postal code into an address. Every failure is an
// *address.Error. Implementations must not be called inside a transaction.
type AddressResolver interface {
	Resolve(ctx context.Context, rawCode string) (address.Address, error)
}
