package registry

import (
	"context"
	"sort"

	"hoteldesk/internal/domain"
)

// Service serves the room and guest registries. Both are read-mostly
// reference data; bookings only point into them by id.
type Service struct {
	rooms    RoomRepository
	guests   GuestRepository
	bookings BookingSource
}

func NewService(rooms RoomRepository, guests GuestRepository, bookings BookingSource) *Service {
	return &Service{
		rooms:    rooms,
		guests:   guests,
		bookings: bookings,
	}
}

func (s *Service) Rooms(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.GetAll(ctx)
}

func (s *Service) RoomByID(ctx context.Context, id string) (*domain.Room, error) {
	return s.rooms.GetByID(ctx, id)
}

func (s *Service) GuestByID(ctx context.Context, id string) (*domain.Guest, error) {
	return s.guests.GetByID(ctx, id)
}

// Guests returns every guest ordered by their strongest booking: guests
// with an active stay first, then upcoming, past and cancelled, guests with
// no bookings last. Ties inside a category follow the booking ordering
// rules.
func (s *Service) Guests(ctx context.Context) ([]GuestView, error) {
	guests, err := s.guests.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	type ranked struct {
		view GuestView
		rank domain.GuestRank
	}
	items := make([]ranked, 0, len(guests))
	for _, g := range guests {
		bookings := s.bookings.GetByGuest(g.ID)
		rank := domain.RankGuest(bookings)

		view := GuestView{Guest: g, BookingCount: len(bookings)}
		if rank.HasBookings {
			view.Category = rank.Category.String()
		}
		for i := range bookings {
			if bookings[i].CancelledAt != nil {
				view.CancelledBookings++
			}
		}
		items = append(items, ranked{view: view, rank: rank})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return domain.LessGuests(items[i].rank, items[j].rank)
	})

	out := make([]GuestView, 0, len(items))
	for _, it := range items {
		out = append(out, it.view)
	}
	return out, nil
}
