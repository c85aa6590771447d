package requests

import (
	"time"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/pkg/logger"
)

// Service runs the cancellation workflow: pending requests move to approved
// or rejected exactly once, and approval cancels the target booking.
type Service struct {
	store    RequestStore
	bookings BookingCanceller
	now      func() time.Time
}

func NewService(store RequestStore, bookings BookingCanceller) *Service {
	return &Service{
		store:    store,
		bookings: bookings,
		now:      time.Now,
	}
}

// RequestCancellation opens a pending request for the booking. The booking
// must exist, be neither checked in nor cancelled, and must never have had a
// request before — a resolved request blocks re-requesting.
func (s *Service) RequestCancellation(bookingID string, requestedBy int64) (string, error) {
	b, ok := s.store.GetByID(bookingID)
	if !ok || b.CheckInDateTime != nil || b.CancelledAt != nil {
		return "", ErrBookingNotCancellable
	}

	if _, exists := s.store.RequestForBooking(bookingID); exists {
		return "", ErrRequestAlreadyExists
	}

	id := s.store.AddRequest(domain.CancellationRequest{
		BookingID:   bookingID,
		RequestedBy: requestedBy,
		RequestedAt: s.now(),
		Status:      domain.RequestPending,
	})
	return id, nil
}

// ApproveCancellation resolves a pending request as approved and cancels its
// target booking. The reported result follows the request transition alone:
// if the booking was independently checked in since the request was filed,
// the inner cancellation guard fails, the request still ends approved, and
// the mismatch is logged.
func (s *Service) ApproveCancellation(requestID string, resolvedBy int64) bool {
	req, ok := s.store.GetRequest(requestID)
	if !ok {
		return false
	}
	if !s.store.ResolveRequest(requestID, domain.RequestApproved, resolvedBy, s.now()) {
		return false
	}

	if !s.bookings.CancelBooking(req.BookingID) {
		logger.Log.WithField("request_id", requestID).
			WithField("booking_id", req.BookingID).
			Warn("request approved but booking could not be cancelled")
	}
	return true
}

// RejectCancellation resolves a pending request as rejected. The booking is
// untouched.
func (s *Service) RejectCancellation(requestID string, resolvedBy int64) bool {
	return s.store.ResolveRequest(requestID, domain.RequestRejected, resolvedBy, s.now())
}

// Requests returns every request, resolved ones included.
func (s *Service) Requests() []domain.CancellationRequest {
	return s.store.Requests()
}

// RequestViews joins every request with a snapshot of its target booking
// for the review page. Requests whose booking was deleted keep a nil
// booking; lookups must not fail on absence.
func (s *Service) RequestViews() []RequestView {
	reqs := s.store.Requests()
	out := make([]RequestView, 0, len(reqs))
	for _, r := range reqs {
		v := RequestView{CancellationRequest: r}
		if b, ok := s.store.GetByID(r.BookingID); ok {
			v.Booking = &b
		}
		out = append(out, v)
	}
	return out
}

// RequestsBy returns the requests filed by one user.
func (s *Service) RequestsBy(userID int64) []domain.CancellationRequest {
	out := make([]domain.CancellationRequest, 0)
	for _, r := range s.store.Requests() {
		if r.RequestedBy == userID {
			out = append(out, r)
		}
	}
	return out
}

// PendingRequests backs the admin notification badge.
func (s *Service) PendingRequests() []domain.CancellationRequest {
	return s.store.PendingRequests()
}
