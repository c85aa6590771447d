package requests

import (
	"time"

	"hoteldesk/internal/domain"
)

// RequestStore is the slice of the in-memory store the workflow needs.
type RequestStore interface {
	GetByID(id string) (domain.Booking, bool)
	AddRequest(r domain.CancellationRequest) string
	GetRequest(id string) (domain.CancellationRequest, bool)
	RequestForBooking(bookingID string) (domain.CancellationRequest, bool)
	ResolveRequest(id string, status domain.RequestStatus, resolvedBy int64, at time.Time) bool
	Requests() []domain.CancellationRequest
	PendingRequests() []domain.CancellationRequest
}

// BookingCanceller lets an approved request cancel its target booking
// through the booking lifecycle guards.
type BookingCanceller interface {
	CancelBooking(bookingID string) bool
}
