package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListClientsQueryHandler struct {
	db *gorm.DB
}

func NewListClientsQueryHandler(db *gorm.DB) ListClientsQueryHandler {
	return ListClientsQueryHandler{db: db}
}

func (h ListClientsQueryHandler) Handle(ctx context.Context, query ListClientsQuery) ([]ClientResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	clients := make([]ClientResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id, name, cpf, email, phone,
			postal_code, street, neighborhood, complement, city, state,
			created_at
		FROM clients
		ORDER BY created_at, id
	`).Rows()
	if err != nil {
		return nil, errs.NewStorageError("list clients", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c ClientResponse
		var id uuid.UUID

		err = rows.Scan(
			&id, &c.Name, &c.CPF, &c.Email, &c.Phone,
			&c.PostalCode, &c.Street, &c.Neighborhood, &c.Complement, &c.City, &c.State,
			&c.CreatedAt,
		)
		if err != nil {
			return nil, errs.NewStorageError("scan client", err)
		}

		if c.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		c.CreatedAt = c.CreatedAt.UTC()
		clients = append(clients, c)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStorageError("list clients", err)
	}

	return clients, nil
}
