package commands

import (
	"errors"
	"strings"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrRegisterClientCommandIsNotConstructed = errors.New(
	"RegisterClientCommand must be created via NewRegisterClientCommand constructor",
)

// RegisterClientCommand asks to register a client whose address is resolved
// from postalCode. Phone is optional.
type RegisterClientCommand struct { //nolint:recvcheck //using for validation
	name       string
	cpf        string
	email      string
	phone      string
	postalCode string

	guard guard.ConstructorGuard
}

func NewRegisterClientCommand(name, cpf, email, phone, postalCode string) (RegisterClientCommand, error) {
	cmd := RegisterClientCommand{
		phone: strings.TrimSpace(phone),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setCPF(cpf),
		cmd.setEmail(email),
		cmd.setPostalCode(postalCode),
	); err != nil {
		return RegisterClientCommand{}, err
	}

	return cmd, nil
}

func (c RegisterClientCommand) Validate() error {
	return c.guard.Validate(ErrRegisterClientCommandIsNotConstructed)
}

func (c RegisterClientCommand) Name() string       { return c.name }
func (c RegisterClientCommand) CPF() string        { return c.cpf }
func (c RegisterClientCommand) Email() string      { return c.email }
func (c RegisterClientCommand) Phone() string      { return c.phone }
func (c RegisterClientCommand) PostalCode() string { return c.postalCode }

func (c *RegisterClientCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterClientCommand) setCPF(cpf string) error {
	cpf = strings.TrimSpace(cpf)
	if cpf == "" {
		return errs.NewValueIsRequiredError("cpf")
	}
	c.cpf = cpf
	return nil
}

func (c *RegisterClientCommand) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if err := validate.Var(email, "email"); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	c.email = email
	return nil
}

// The postal code is checked by the address resolver, which reports malformed
// codes with its own error kind.
func (c *RegisterClientCommand) setPostalCode(postalCode string) error {
	postalCode = strings.TrimSpace(postalCode)
	if postalCode == "" {
		return errs.NewValueIsRequiredError("postalCode")
	}
	c.postalCode = postalCode
	return nil
}
