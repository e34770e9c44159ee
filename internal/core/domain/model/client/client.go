// Package client provides the Client aggregate: the customer placing freight orders.
// A client is identified by a unique CPF and a unique email and carries the
// address resolved from the postal code given at registration.
package client

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"freight/internal/core/domain/model/address"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// CPFLength is the number of digits of a normalized CPF.
const CPFLength = 11

var (
	ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")

	nonDigits = regexp.MustCompile(`\D`)
)

// NormalizeDigits drops punctuation from CPF and phone inputs ("123.456.789-09" -> "12345678909").
func NormalizeDigits(raw string) string {
	return nonDigits.ReplaceAllString(raw, "")
}

type Client struct {
	id            kernel.UUID
	name          string
	cpf           string
	email         string
	phone         string
	address       address.Address
	createdAt     time.Time
	isConstructed bool
}

// NewClient validates the registration data. Email syntax is checked by the caller;
// here it only has to be present.
func NewClient(id kernel.UUID, name, cpf, email, phone string, addr address.Address) (*Client, error) {
	c := &Client{
		createdAt:     time.Now().UTC().Truncate(time.Microsecond),
		isConstructed: true,
	}
	if err := c.set(id, name, cpf, email, phone, addr); err != nil {
		return nil, err
	}
	return c, nil
}

// RestoreClient rebuilds a client loaded from storage.
func RestoreClient(
	id kernel.UUID,
	name, cpf, email, phone string,
	addr address.Address,
	createdAt time.Time,
) (*Client, error) {
	c := &Client{createdAt: createdAt, isConstructed: true}
	if err := c.set(id, name, cpf, email, phone, addr); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Client) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClientIsNotConstructed
	}
	return nil
}

func (c *Client) ID() kernel.UUID          { return c.id }
func (c *Client) Name() string             { return c.name }
func (c *Client) CPF() string              { return c.cpf }
func (c *Client) Email() string            { return c.email }
func (c *Client) Phone() string            { return c.phone }
func (c *Client) Address() address.Address { return c.address }
func (c *Client) CreatedAt() time.Time     { return c.createdAt }

func (c *Client) set(id kernel.UUID, name, cpf, email, phone string, addr address.Address) error {
	return errors.Join(
		c.setID(id),
		c.setName(name),
		c.setCPF(cpf),
		c.setEmail(email),
		c.setPhone(phone),
		c.setAddress(addr),
	)
}

func (c *Client) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Client) setCPF(cpf string) error {
	if strings.TrimSpace(cpf) == "" {
		return errs.NewValueIsRequiredError("cpf")
	}
	digits := NormalizeDigits(cpf)
	if len(digits) != CPFLength {
		return errs.NewValueIsInvalidError("cpf")
	}
	c.cpf = digits
	return nil
}

func (c *Client) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

// Phone is optional; when given it must contain at least one digit.
func (c *Client) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return nil
	}
	digits := NormalizeDigits(phone)
	if digits == "" {
		return errs.NewValueIsInvalidError("phone")
	}
	c.phone = digits
	return nil
}

func (c *Client) setAddress(addr address.Address) error {
	if err := addr.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("address", err)
	}
	c.address = addr
	return nil
}
