package delivery

import (
	"fmt"
	"strings"

	"freight/internal/pkg/errs"
)

// Status is the lifecycle state of a delivery. Values match the seeded
// delivery_statuses ids.
//
//	Calculated ──> InTransit ──> Delivered
type Status int

const (
	// Unknown is the invalid zero value.
	Unknown Status = iota
	Calculated
	InTransit
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Calculated: "Calculated",
		InTransit:  "InTransit",
		Delivered:  "Delivered",
	}
}

// ParseStatus accepts the names produced by String, case-insensitively.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && strings.EqualFold(name, strings.TrimSpace(s)) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a delivery status", s))
}

func (s Status) Validate() error {
	if s < Calculated || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// IsFinal reports whether no further transition exists.
func (s Status) IsFinal() bool {
	return s == Delivered
}

// Next returns the single status reachable from s.
func (s Status) Next() (Status, error) {
	switch s {
	case Calculated:
		return InTransit, nil
	case InTransit:
		return Delivered, nil
	case Unknown, Delivered:
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s has no next status", s),
		)
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s has no next status", s),
		)
	}
}

// ValidateTransition checks that target is exactly one step ahead of s.
func (s Status) ValidateTransition(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	next, err := s.Next()
	if err != nil {
		return err
	}
	if next != target {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot move from %s to %s", s, target),
		)
	}
	return nil
}
