package booking

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("booking not found")
	ErrRoomNotFound  = errors.New("room not found")
	ErrGuestNotFound = errors.New("guest not found")
	ErrNotAvailable  = errors.New("room not available for the selected dates")
)
