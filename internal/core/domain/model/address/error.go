package address

import (
	"errors"
	"fmt"
)

// Kind classifies an address resolution failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidCode
	KindTimeout
	KindNotFound
	KindBadRequest
	KindEndpointNotFound
	KindServiceUnavailable
	KindTransportError
	KindNetworkError
)

var (
	ErrUnknown            = errors.New("unknown address lookup failure")
	ErrInvalidCode        = errors.New("postal code must have exactly 8 digits")
	ErrTimeout            = errors.New("address lookup timed out")
	ErrNotFound           = errors.New("postal code not found")
	ErrBadRequest         = errors.New("address service rejected the request")
	ErrEndpointNotFound   = errors.New("address service endpoint not found")
	ErrServiceUnavailable = errors.New("address service unavailable")
	ErrTransportError     = errors.New("unexpected address service response")
	ErrNetworkError       = errors.New("address service unreachable")
)

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidCode:
		return ErrInvalidCode
	case KindTimeout:
		return ErrTimeout
	case KindNotFound:
		return ErrNotFound
	case KindBadRequest:
		return ErrBadRequest
	case KindEndpointNotFound:
		return ErrEndpointNotFound
	case KindServiceUnavailable:
		return ErrServiceUnavailable
	case KindTransportError:
		return ErrTransportError
	case KindNetworkError:
		return ErrNetworkError
	case KindUnknown:
		return ErrUnknown
	default:
		return ErrUnknown
	}
}

func (k Kind) String() string {
	switch k {
	case KindInvalidCode:
		return "InvalidCode"
	case KindTimeout:
		return "Timeout"
	case KindNotFound:
		return "NotFound"
	case KindBadRequest:
		return "BadRequest"
	case KindEndpointNotFound:
		return "EndpointNotFound"
	case KindServiceUnavailable:
		return "ServiceUnavailable"
	case KindTransportError:
		return "TransportError"
	case KindNetworkError:
		return "NetworkError"
	case KindUnknown:
		return "Unknown"
	default:
		return "Unknown"
	}
}

// Error is returned by every AddressResolver failure. Status carries the
// upstream HTTP status when one was received, zero otherwise.
type Error struct {
	Kind   Kind
	Status int
	Cause  error
}

func NewError(kind Kind, status int, cause error) *Error {
	return &Error{Kind: kind, Status: status, Cause: cause}
}

func (e *Error) Error() string {
	msg := e.Kind.sentinel().Error()
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (HTTP %d)", msg, e.Status)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}

// KindOf extracts the Kind of an address failure; ok is false for other errors.
func KindOf(err error) (Kind, bool) {
	var addrErr *Error
	if errors.As(err, &addrErr) {
		return addrErr.Kind, true
	}
	return KindUnknown, false
}
