package requests

import "errors"

var (
	// ErrBookingNotCancellable covers a missing, checked-in or already
	// cancelled target booking.
	ErrBookingNotCancellable = errors.New("booking cannot be cancelled")
	// ErrRequestAlreadyExists fires when any request for the booking exists,
	// pending or resolved.
	ErrRequestAlreadyExists = errors.New("cancellation request already exists or has been reviewed")
)
