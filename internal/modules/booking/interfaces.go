package booking

import (
	"context"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/store"
)

// BookingStore is the slice of the in-memory store the booking service
// needs. PurgeRequestsForBooking is part of it because check-in and
// cancellation must drop pending cancellation requests in the same
// operation.
type BookingStore interface {
	Add(b domain.Booking) string
	Update(id string, upd store.BookingUpdate) bool
	Delete(id string) bool
	GetByID(id string) (domain.Booking, bool)
	GetByRoom(roomID string) []domain.Booking
	GetByGuest(guestID string) []domain.Booking
	GetAll() []domain.Booking
	RequestForBooking(bookingID string) (domain.CancellationRequest, bool)
	PurgeRequestsForBooking(bookingID string)
}

// RoomRegistry defines the read lookups the service needs from the room
// registry.
type RoomRegistry interface {
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	GetAll(ctx context.Context) ([]domain.Room, error)
}

// GuestRegistry defines the read lookups the service needs from the guest
// registry.
type GuestRegistry interface {
	GetByID(ctx context.Context, id string) (*domain.Guest, error)
}
