// Package deliverytype holds the read-only delivery type reference data
// (normal or urgent) that drives the urgency surcharge.
package deliverytype

import (
	"errors"
	"strings"

	"freight/internal/pkg/errs"
)

const (
	// DefaultLabel is the label used when a delivery type id does not resolve.
	DefaultLabel = "normal"
	UrgentLabel  = "urgent"
)

// Seeded identifiers.
const (
	NormalID int64 = 1
	UrgentID int64 = 2
)

var ErrDeliveryTypeIsNotConstructed = errors.New("DeliveryType must be created via NewDeliveryType constructor")

type DeliveryType struct {
	id            int64
	label         string
	isConstructed bool
}

func NewDeliveryType(id int64, label string) (*DeliveryType, error) {
	if id <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("deliveryTypeId", id, 1, "unbounded")
	}
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return nil, errs.NewValueIsRequiredError("label")
	}
	return &DeliveryType{id: id, label: label, isConstructed: true}, nil
}

func (t *DeliveryType) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrDeliveryTypeIsNotConstructed
	}
	return nil
}

func (t *DeliveryType) ID() int64 {
	return t.id
}

func (t *DeliveryType) Label() string {
	return t.label
}

func (t *DeliveryType) IsUrgent() bool {
	return t.label == UrgentLabel
}
