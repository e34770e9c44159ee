// Package clientrepo maps client aggregates to the clients table.
package clientrepo

import (
	"time"

	"freight/internal/core/domain/model/address"
	"freight/internal/core/domain/model/client"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ClientDTO is the row shape of the clients table. The address is flattened
// into columns.
type ClientDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"not null"`
	CPF          string    `gorm:"column:cpf;type:char(11);not null;uniqueIndex"`
	Email        string    `gorm:"not null;uniqueIndex"`
	Phone        string
	PostalCode   string `gorm:"type:char(8);not null"`
	Street       string
	Neighborhood string
	Complement   string
	City         string    `gorm:"not null"`
	State        string    `gorm:"type:char(2);not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (ClientDTO) TableName() string {
	return "clients"
}

func fromDomain(c *client.Client) ClientDTO {
	addr := c.Address()
	return ClientDTO{
		ID:           c.ID().Google(),
		Name:         c.Name(),
		CPF:          c.CPF(),
		Email:        c.Email(),
		Phone:        c.Phone(),
		PostalCode:   addr.PostalCode(),
		Street:       addr.Street(),
		Neighborhood: addr.Neighborhood(),
		Complement:   addr.Complement(),
		City:         addr.City(),
		State:        addr.State(),
		CreatedAt:    c.CreatedAt(),
	}
}

func toDomain(dto ClientDTO) (*client.Client, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	addr, err := address.NewAddress(dto.PostalCode, dto.Street, dto.Neighborhood, dto.Complement, dto.City, dto.State)
	if err != nil {
		return nil, err
	}

	return client.RestoreClient(id, dto.Name, dto.CPF, dto.Email, dto.Phone, addr, dto.CreatedAt.UTC())
}
