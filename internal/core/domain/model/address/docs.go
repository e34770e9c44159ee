// Package address models a postal address resolved from a Brazilian postal code (CEP)
// and the closed set of failures the resolution may produce.
//
// Address resolution failures are reported as *Error values. Each Kind has a sentinel
// so callers branch with errors.Is without depending on the resolver implementation:
//
//	if errors.Is(err, address.ErrNotFound) {
//	    // the postal code is well formed but unknown
//	}
package address
