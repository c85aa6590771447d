package requests

import "hoteldesk/internal/domain"

// RequestView joins a request with a snapshot of its target booking for the
// admin review page.
type RequestView struct {
	domain.CancellationRequest
	Booking *domain.Booking `json:"booking,omitempty"`
}
