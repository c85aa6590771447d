package store

import (
	"sync"
	"time"

	"hoteldesk/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingStore holds all bookings and their cancellation requests in memory.
// Reads come back in insertion order. The cascade between bookings and
// requests (a check-in or cancellation dropping pending requests) lives here
// so it happens under one lock.
//
// The store is not durable. A process restart loses everything except the
// seeded registries, which live in the database.
type BookingStore struct {
	mu       sync.RWMutex
	bookings []domain.Booking
	requests []domain.CancellationRequest
}

func NewBookingStore() *BookingStore {
	return &BookingStore{}
}

// BookingUpdate carries the fields of a partial booking edit. Nil fields are
// left untouched. No invariant checking happens here; lifecycle operations
// in the booking service own the guards.
type BookingUpdate struct {
	RoomID           *string
	GuestID          *string
	GuestName        *string
	NationalID       *string
	Phone            *string
	NumberOfPeople   *int
	TotalAmount      *decimal.Decimal
	PaidAmount       *decimal.Decimal
	BookingDate      *string
	DurationDays     *int
	CheckInDateTime  *time.Time
	CheckOutDateTime *time.Time
	CancelledAt      *time.Time
}

// Add assigns a fresh id, appends the booking and returns the id.
func (s *BookingStore) Add(b domain.Booking) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	b.ID = uuid.NewString()
	s.bookings = append(s.bookings, b)
	return b.ID
}

// Update merges the given fields into the matching booking and reports
// whether it was found.
func (s *BookingStore) Update(id string, upd BookingUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID != id {
			continue
		}
		applyUpdate(&s.bookings[i], upd)
		return true
	}
	return false
}

func applyUpdate(b *domain.Booking, upd BookingUpdate) {
	if upd.RoomID != nil {
		b.RoomID = *upd.RoomID
	}
	if upd.GuestID != nil {
		b.GuestID = *upd.GuestID
	}
	if upd.GuestName != nil {
		b.GuestName = *upd.GuestName
	}
	if upd.NationalID != nil {
		b.NationalID = *upd.NationalID
	}
	if upd.Phone != nil {
		b.Phone = *upd.Phone
	}
	if upd.NumberOfPeople != nil {
		b.NumberOfPeople = *upd.NumberOfPeople
	}
	if upd.TotalAmount != nil {
		b.TotalAmount = *upd.TotalAmount
	}
	if upd.PaidAmount != nil {
		b.PaidAmount = *upd.PaidAmount
	}
	if upd.BookingDate != nil {
		b.BookingDate = *upd.BookingDate
	}
	if upd.DurationDays != nil {
		b.DurationDays = *upd.DurationDays
	}
	if upd.CheckInDateTime != nil {
		b.CheckInDateTime = upd.CheckInDateTime
	}
	if upd.CheckOutDateTime != nil {
		b.CheckOutDateTime = upd.CheckOutDateTime
	}
	if upd.CancelledAt != nil {
		b.CancelledAt = upd.CancelledAt
	}
}

// Delete removes the matching booking and reports whether it was found.
// Deleting purges the record entirely; cancellation keeps it with a
// timestamp instead.
func (s *BookingStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return true
		}
	}
	return false
}

func (s *BookingStore) GetByID(id string) (domain.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			return s.bookings[i], true
		}
	}
	return domain.Booking{}, false
}

func (s *BookingStore) GetByRoom(roomID string) []domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Booking, 0)
	for i := range s.bookings {
		if s.bookings[i].RoomID == roomID {
			out = append(out, s.bookings[i])
		}
	}
	return out
}

func (s *BookingStore) GetByGuest(guestID string) []domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Booking, 0)
	for i := range s.bookings {
		if s.bookings[i].GuestID == guestID {
			out = append(out, s.bookings[i])
		}
	}
	return out
}

func (s *BookingStore) GetAll() []domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// -------------------- Cancellation requests --------------------

// AddRequest assigns a fresh id, appends the request and returns the id.
func (s *BookingStore) AddRequest(r domain.CancellationRequest) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = uuid.NewString()
	s.requests = append(s.requests, r)
	return r.ID
}

func (s *BookingStore) GetRequest(id string) (domain.CancellationRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.requests {
		if s.requests[i].ID == id {
			return s.requests[i], true
		}
	}
	return domain.CancellationRequest{}, false
}

// RequestForBooking returns the first request targeting the booking,
// whatever its status.
func (s *BookingStore) RequestForBooking(bookingID string) (domain.CancellationRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.requests {
		if s.requests[i].BookingID == bookingID {
			return s.requests[i], true
		}
	}
	return domain.CancellationRequest{}, false
}

// ResolveRequest moves a pending request into a terminal status, stamping
// resolver and instant. It reports false if the request is missing or
// already resolved.
func (s *BookingStore) ResolveRequest(id string, status domain.RequestStatus, resolvedBy int64, at time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.requests {
		if s.requests[i].ID != id {
			continue
		}
		if s.requests[i].Status != domain.RequestPending {
			return false
		}
		s.requests[i].Status = status
		s.requests[i].ResolvedAt = &at
		s.requests[i].ResolvedBy = &resolvedBy
		return true
	}
	return false
}

// PurgeRequestsForBooking drops the booking's pending requests only. A guest
// who checks in or a direct cancellation supersedes anything still awaiting
// review, but an already approved or rejected request is a decision on
// record and stays in the feed through every later lifecycle transition.
func (s *BookingStore) PurgeRequestsForBooking(bookingID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.requests[:0]
	for i := range s.requests {
		if s.requests[i].BookingID == bookingID && s.requests[i].Status == domain.RequestPending {
			continue
		}
		kept = append(kept, s.requests[i])
	}
	s.requests = kept
}

func (s *BookingStore) Requests() []domain.CancellationRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.CancellationRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *BookingStore) PendingRequests() []domain.CancellationRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.CancellationRequest, 0)
	for i := range s.requests {
		if s.requests[i].Status == domain.RequestPending {
			out = append(out, s.requests[i])
		}
	}
	return out
}
