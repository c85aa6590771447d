package booking

import (
	"time"

	"hoteldesk/internal/domain"

	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	RoomID         string          `json:"room_id" binding:"required"`
	GuestID        string          `json:"guest_id" binding:"required"`
	NumberOfPeople int             `json:"number_of_people" binding:"required,gte=1"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	PaidAmount     decimal.Decimal `json:"paid_amount"`
	BookingDate    string          `json:"booking_date" binding:"required"`
	DurationDays   int             `json:"duration_days" binding:"required,gte=1"`
}

// UpdateBookingRequest is a partial edit; absent fields stay untouched.
type UpdateBookingRequest struct {
	RoomID         *string          `json:"room_id"`
	GuestID        *string          `json:"guest_id"`
	GuestName      *string          `json:"guest_name"`
	NationalID     *string          `json:"national_id"`
	Phone          *string          `json:"phone"`
	NumberOfPeople *int             `json:"number_of_people"`
	TotalAmount    *decimal.Decimal `json:"total_amount"`
	PaidAmount     *decimal.Decimal `json:"paid_amount"`
	BookingDate    *string          `json:"booking_date"`
	DurationDays   *int             `json:"duration_days"`
}

// BookingView is a booking joined with its room number for lists and cards.
type BookingView struct {
	domain.Booking
	RoomNumber string             `json:"room_number,omitempty"`
	Category   string             `json:"category"`
	Request    *RequestStatusView `json:"cancellation_request,omitempty"`
}

type RequestStatusView struct {
	ID          string               `json:"id"`
	Status      domain.RequestStatus `json:"status"`
	RequestedAt time.Time            `json:"requested_at"`
}
