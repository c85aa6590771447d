package registry

import (
	"context"

	"hoteldesk/internal/domain"
)

type RoomRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	GetAll(ctx context.Context) ([]domain.Room, error)
}

type GuestRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Guest, error)
	GetAll(ctx context.Context) ([]domain.Guest, error)
}

// BookingSource exposes the booking reads the guest list needs for its
// ordering and counters.
type BookingSource interface {
	GetByGuest(guestID string) []domain.Booking
}
