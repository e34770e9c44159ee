package address

import (
	"errors"
	"regexp"
	"strings"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// PostalCodeLength is the number of digits of a normalized postal code.
const PostalCodeLength = 8

var (
	ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

	nonDigits = regexp.MustCompile(`\D`)
)

// NormalizePostalCode strips every non-digit character and reports whether
// exactly eight digits remain. "01001-000" and "01001000" normalize to the same code.
func NormalizePostalCode(raw string) (string, bool) {
	code := nonDigits.ReplaceAllString(raw, "")
	return code, len(code) == PostalCodeLength
}

// Address is an immutable value object. PostalCode is always normalized.
type Address struct {
	postalCode   string
	street       string
	neighborhood string
	complement   string
	city         string
	state        string
	guard        guard.ConstructorGuard
}

// NewAddress builds an Address. Street, neighborhood and complement may be empty:
// single-code cities resolve without them.
func NewAddress(postalCode, street, neighborhood, complement, city, state string) (Address, error) {
	code, ok := NormalizePostalCode(postalCode)
	if !ok {
		return Address{}, errs.NewValueIsInvalidError("postalCode")
	}
	city = strings.TrimSpace(city)
	if city == "" {
		return Address{}, errs.NewValueIsRequiredError("city")
	}
	state = strings.TrimSpace(state)
	if state == "" {
		return Address{}, errs.NewValueIsRequiredError("state")
	}

	return Address{
		postalCode:   code,
		street:       strings.TrimSpace(street),
		neighborhood: strings.TrimSpace(neighborhood),
		complement:   strings.TrimSpace(complement),
		city:         city,
		state:        strings.ToUpper(state),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) PostalCode() string   { return a.postalCode }
func (a Address) Street() string       { return a.street }
func (a Address) Neighborhood() string { return a.neighborhood }
func (a Address) Complement() string   { return a.complement }
func (a Address) City() string         { return a.city }
func (a Address) State() string        { return a.state }
