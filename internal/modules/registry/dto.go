package registry

import "hoteldesk/internal/domain"

// GuestView is a guest joined with booking counters for the guest list.
type GuestView struct {
	domain.Guest
	Category          string `json:"category,omitempty"`
	BookingCount      int    `json:"booking_count"`
	CancelledBookings int    `json:"cancelled_bookings,omitempty"`
}
