package domain

import "time"

// Category is a booking's lifecycle bucket for display ordering. Lower
// values sort first. Every booking falls into exactly one category.
type Category int

const (
	CategoryActive Category = iota + 1
	CategoryUpcoming
	CategoryPast
	CategoryCancelled
)

func (c Category) String() string {
	switch c {
	case CategoryActive:
		return "active"
	case CategoryUpcoming:
		return "upcoming"
	case CategoryPast:
		return "past"
	case CategoryCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Classify maps a booking onto its lifecycle category. Checks run in fixed
// order; the first match wins.
func Classify(b *Booking) Category {
	switch {
	case b.CheckInDateTime != nil && b.CheckOutDateTime == nil:
		return CategoryActive
	case b.CheckInDateTime == nil && b.CancelledAt == nil:
		return CategoryUpcoming
	case b.CheckInDateTime != nil && b.CheckOutDateTime != nil:
		return CategoryPast
	default:
		return CategoryCancelled
	}
}

// Less orders two bookings for display: category first, then inside each
// category by that category's own instant. Active stays sort by check-in
// ascending, upcoming by booking date ascending, past by check-out
// descending, cancelled by cancellation time descending.
func Less(a, b *Booking) bool {
	ca, cb := Classify(a), Classify(b)
	if ca != cb {
		return ca < cb
	}
	switch ca {
	case CategoryActive:
		return a.CheckInDateTime.Before(*b.CheckInDateTime)
	case CategoryUpcoming:
		// ISO dates order lexically.
		return a.BookingDate < b.BookingDate
	case CategoryPast:
		return a.CheckOutDateTime.After(*b.CheckOutDateTime)
	default:
		return a.CancelledAt.After(*b.CancelledAt)
	}
}

// GuestRank summarizes a guest's bookings for list ordering: the best
// (lowest) category among them plus that category's extremal instant as the
// tie-break key. HasBookings is false for guests with no bookings at all;
// they sort after everyone else.
type GuestRank struct {
	Category    Category
	Key         time.Time
	HasBookings bool
}

// RankGuest classifies a guest by their bookings. The tie-break key keeps
// the per-category sort direction of Less: ascending categories use the
// earliest qualifying instant, descending ones the latest.
func RankGuest(bookings []Booking) GuestRank {
	best := GuestRank{}
	for i := range bookings {
		b := &bookings[i]
		c := Classify(b)
		key, ok := categoryKey(b, c)
		if !ok {
			continue
		}
		if !best.HasBookings || c < best.Category {
			best = GuestRank{Category: c, Key: key, HasBookings: true}
			continue
		}
		if c == best.Category && betterKey(c, key, best.Key) {
			best.Key = key
		}
	}
	return best
}

// LessGuests orders two guests' ranks the same way Less orders bookings.
func LessGuests(a, b GuestRank) bool {
	if a.HasBookings != b.HasBookings {
		return a.HasBookings
	}
	if !a.HasBookings {
		return false
	}
	if a.Category != b.Category {
		return a.Category < b.Category
	}
	return betterKey(a.Category, a.Key, b.Key)
}

func categoryKey(b *Booking, c Category) (time.Time, bool) {
	switch c {
	case CategoryActive:
		return *b.CheckInDateTime, true
	case CategoryUpcoming:
		start, err := b.StayStart()
		if err != nil {
			return time.Time{}, false
		}
		return start, true
	case CategoryPast:
		return *b.CheckOutDateTime, true
	default:
		return *b.CancelledAt, true
	}
}

// betterKey reports whether x beats y inside category c: earlier wins for
// active and upcoming, later wins for past and cancelled.
func betterKey(c Category, x, y time.Time) bool {
	if c == CategoryActive || c == CategoryUpcoming {
		return x.Before(y)
	}
	return x.After(y)
}
