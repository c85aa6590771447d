package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used for booking dates.
// Booking dates carry day-only semantics; time of day never matters.
const DateLayout = "2006-01-02"

// Booking is a reservation of one room for a guest over a range of nights.
// Guest name, national id and phone are snapshotted at booking time and kept
// as-is even if the guest record changes later.
type Booking struct {
	ID               string          `json:"id"`
	RoomID           string          `json:"room_id"`
	GuestID          string          `json:"guest_id"`
	GuestName        string          `json:"guest_name"`
	NationalID       string          `json:"national_id"`
	Phone            string          `json:"phone"`
	NumberOfPeople   int             `json:"number_of_people"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	PaidAmount       decimal.Decimal `json:"paid_amount"`
	BookingDate      string          `json:"booking_date"`
	DurationDays     int             `json:"duration_days"`
	CheckInDateTime  *time.Time      `json:"check_in_date_time,omitempty"`
	CheckOutDateTime *time.Time      `json:"check_out_date_time,omitempty"`
	CancelledAt      *time.Time      `json:"cancelled_at,omitempty"`
}

// ParseDay parses a calendar date in DateLayout.
func ParseDay(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// Day truncates an instant to its calendar day in UTC.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// StayStart is the first booked day.
func (b *Booking) StayStart() (time.Time, error) {
	return ParseDay(b.BookingDate)
}

// StayEnd is bookingDate + durationDays, the first day after the booked
// nights. Availability checks treat this edge day itself as occupied, see
// Overlaps.
func (b *Booking) StayEnd() (time.Time, error) {
	start, err := b.StayStart()
	if err != nil {
		return time.Time{}, err
	}
	return start.AddDate(0, 0, b.DurationDays), nil
}

// BlocksRoom reports whether the booking still holds its room. Checked-out
// and cancelled bookings never block availability.
func (b *Booking) BlocksRoom() bool {
	return b.CheckOutDateTime == nil && b.CancelledAt == nil
}

// Overlaps reports whether the queried day range [from, to] touches the
// booking's stay window. The window is inclusive at both edges: a query that
// lands exactly on the departure day (bookingDate + durationDays) still
// counts as a conflict.
func (b *Booking) Overlaps(from, to time.Time) bool {
	start, err := b.StayStart()
	if err != nil {
		return false
	}
	end := start.AddDate(0, 0, b.DurationDays)

	if withinInclusive(from, start, end) || withinInclusive(to, start, end) {
		return true
	}
	return from.Before(start) && to.After(end)
}

// ContainsDay reports whether the given day falls inside the booking's stay
// window, inclusive at both edges.
func (b *Booking) ContainsDay(day time.Time) bool {
	start, err := b.StayStart()
	if err != nil {
		return false
	}
	end := start.AddDate(0, 0, b.DurationDays)
	return withinInclusive(day, start, end)
}

func withinInclusive(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
