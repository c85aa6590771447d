package booking

import (
	"context"
	"sort"
	"time"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/store"
)

// Service owns the booking lifecycle: creation, edits, check-in/out,
// cancellation and the derived availability queries in availability.go.
type Service struct {
	store  BookingStore
	rooms  RoomRegistry
	guests GuestRegistry
	now    func() time.Time
}

func NewService(store BookingStore, rooms RoomRegistry, guests GuestRegistry) *Service {
	return &Service{
		store:  store,
		rooms:  rooms,
		guests: guests,
		now:    time.Now,
	}
}

// CreateBooking validates the request, snapshots the guest's identity fields
// and appends the booking. The room must be free for every booked night.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	start, err := domain.ParseDay(req.BookingDate)
	if err != nil {
		return nil, ErrValidation
	}
	if req.DurationDays < 1 || req.NumberOfPeople < 1 {
		return nil, ErrValidation
	}
	if req.PaidAmount.GreaterThan(req.TotalAmount) {
		return nil, ErrValidation
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil || room == nil {
		return nil, ErrRoomNotFound
	}
	guest, err := s.guests.GetByID(ctx, req.GuestID)
	if err != nil || guest == nil {
		return nil, ErrGuestNotFound
	}

	lastNight := start.AddDate(0, 0, req.DurationDays-1)
	free, err := s.IsRoomAvailable(req.RoomID, req.BookingDate, lastNight.Format(domain.DateLayout), "")
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, ErrNotAvailable
	}

	b := domain.Booking{
		RoomID:         req.RoomID,
		GuestID:        guest.ID,
		GuestName:      guest.Name,
		NationalID:     guest.NationalID,
		Phone:          guest.Phone,
		NumberOfPeople: req.NumberOfPeople,
		TotalAmount:    req.TotalAmount,
		PaidAmount:     req.PaidAmount,
		BookingDate:    req.BookingDate,
		DurationDays:   req.DurationDays,
	}
	b.ID = s.store.Add(b)
	return &b, nil
}

// UpdateBooking merges the given fields into the booking. No lifecycle
// guards run here; check-in, check-out and cancellation go through their own
// operations.
func (s *Service) UpdateBooking(id string, req UpdateBookingRequest) bool {
	return s.store.Update(id, store.BookingUpdate{
		RoomID:         req.RoomID,
		GuestID:        req.GuestID,
		GuestName:      req.GuestName,
		NationalID:     req.NationalID,
		Phone:          req.Phone,
		NumberOfPeople: req.NumberOfPeople,
		TotalAmount:    req.TotalAmount,
		PaidAmount:     req.PaidAmount,
		BookingDate:    req.BookingDate,
		DurationDays:   req.DurationDays,
	})
}

func (s *Service) DeleteBooking(id string) bool {
	return s.store.Delete(id)
}

func (s *Service) GetBooking(id string) (domain.Booking, bool) {
	return s.store.GetByID(id)
}

func (s *Service) BookingsForRoom(roomID string) []domain.Booking {
	return s.store.GetByRoom(roomID)
}

func (s *Service) BookingsForGuest(guestID string) []domain.Booking {
	return s.store.GetByGuest(guestID)
}

// ListBookings returns every booking in display order: active stays first,
// then upcoming, past and cancelled, each sub-sorted per domain.Less. The
// sort is stable so an already ordered list comes back unchanged.
func (s *Service) ListBookings() []domain.Booking {
	all := s.store.GetAll()
	sort.SliceStable(all, func(i, j int) bool {
		return domain.Less(&all[i], &all[j])
	})
	return all
}

// RequestForBooking exposes the booking's cancellation request, if any.
func (s *Service) RequestForBooking(bookingID string) (domain.CancellationRequest, bool) {
	return s.store.RequestForBooking(bookingID)
}

// CheckIn stamps the check-in instant. It fails if the booking is missing or
// already checked in. A successful check-in drops any pending cancellation
// request: a guest who shows up supersedes it.
func (s *Service) CheckIn(bookingID string) bool {
	b, ok := s.store.GetByID(bookingID)
	if !ok || b.CheckInDateTime != nil {
		return false
	}

	now := s.now()
	ok = s.store.Update(bookingID, store.BookingUpdate{CheckInDateTime: &now})
	if ok {
		s.store.PurgeRequestsForBooking(bookingID)
	}
	return ok
}

// CheckOut stamps the check-out instant. It fails if the booking is missing,
// never checked in, or already checked out.
func (s *Service) CheckOut(bookingID string) bool {
	b, ok := s.store.GetByID(bookingID)
	if !ok || b.CheckInDateTime == nil || b.CheckOutDateTime != nil {
		return false
	}

	now := s.now()
	return s.store.Update(bookingID, store.BookingUpdate{CheckOutDateTime: &now})
}

// CancelBooking stamps the cancellation instant. A checked-in booking can
// never be cancelled, only checked out. A successful cancellation drops any
// pending cancellation request for the booking.
func (s *Service) CancelBooking(bookingID string) bool {
	b, ok := s.store.GetByID(bookingID)
	if !ok || b.CheckInDateTime != nil || b.CancelledAt != nil {
		return false
	}

	now := s.now()
	ok = s.store.Update(bookingID, store.BookingUpdate{CancelledAt: &now})
	if ok {
		s.store.PurgeRequestsForBooking(bookingID)
	}
	return ok
}
