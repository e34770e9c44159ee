package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrListClientsQueryIsNotConstructed = errors.New(
	"ListClientsQuery must be created via NewListClientsQuery constructor",
)

// ListClientsQuery returns every registered client, oldest first.
type ListClientsQuery struct {
	guard guard.ConstructorGuard
}

func NewListClientsQuery() ListClientsQuery {
	return ListClientsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListClientsQuery) Validate() error {
	return q.guard.Validate(ErrListClientsQueryIsNotConstructed)
}

type ClientResponse struct {
	ID           kernel.UUID
	Name         string
	CPF          string
	Email        string
	Phone        string
	PostalCode   string
	Street       string
	Neighborhood string
	Complement   string
	City         string
	State        string
	CreatedAt    time.Time
}
