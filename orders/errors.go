package orders

import (
	"errors"
	"fmt"
)

// ErrValidation is the parent of every client-side rejection. Validation
// failures happen before any network call; the caller shows the message and
// keeps the cart untouched.
var ErrValidation = errors.New("order validation failed")

var (
	ErrNoCustomerName   = fmt.Errorf("%w: customer name is required", ErrValidation)
	ErrEmptyCart        = fmt.Errorf("%w: cart has no items", ErrValidation)
	ErrNonPositiveTotal = fmt.Errorf("%w: order total must be greater than zero", ErrValidation)
)

// ErrUnknownStatus rejects a status update whose value is not part of the
// lifecycle.
var ErrUnknownStatus = errors.New("unknown order status")

// IsValidationError reports whether err was a pre-submission rejection.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}
