package registry

import (
	"context"
	"testing"
	"time"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRooms struct{}

func (stubRooms) GetByID(_ context.Context, id string) (*domain.Room, error) { return nil, nil }
func (stubRooms) GetAll(_ context.Context) ([]domain.Room, error)            { return nil, nil }

type stubGuests struct {
	guests []domain.Guest
}

func (s *stubGuests) GetByID(_ context.Context, id string) (*domain.Guest, error) {
	for i := range s.guests {
		if s.guests[i].ID == id {
			return &s.guests[i], nil
		}
	}
	return nil, nil
}

func (s *stubGuests) GetAll(_ context.Context) ([]domain.Guest, error) {
	return s.guests, nil
}

func ts(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestGuests_OrderedByStrongestBooking(t *testing.T) {
	st := store.NewBookingStore()
	guests := &stubGuests{guests: []domain.Guest{
		{ID: "g-none", Name: "Kamal Hossain"},
		{ID: "g-past", Name: "Fatima Rahman"},
		{ID: "g-active", Name: "Ahmed Khan"},
	}}
	svc := NewService(stubRooms{}, guests, st)

	st.Add(domain.Booking{
		GuestID:         "g-active",
		BookingDate:     "2024-01-10",
		DurationDays:    3,
		CheckInDateTime: ts("2024-01-10T14:00:00Z"),
	})
	st.Add(domain.Booking{
		GuestID:          "g-past",
		BookingDate:      "2024-01-01",
		DurationDays:     2,
		CheckInDateTime:  ts("2024-01-01T14:00:00Z"),
		CheckOutDateTime: ts("2024-01-03T11:00:00Z"),
	})
	st.Add(domain.Booking{
		GuestID:     "g-past",
		BookingDate: "2023-12-01",
		CancelledAt: ts("2023-11-30T10:00:00Z"),
	})

	got, err := svc.Guests(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "g-active", got[0].ID)
	assert.Equal(t, "active", got[0].Category)
	assert.Equal(t, 1, got[0].BookingCount)

	assert.Equal(t, "g-past", got[1].ID)
	assert.Equal(t, "past", got[1].Category, "strongest booking wins over the cancelled one")
	assert.Equal(t, 2, got[1].BookingCount)
	assert.Equal(t, 1, got[1].CancelledBookings)

	assert.Equal(t, "g-none", got[2].ID, "guests with no bookings sort last")
	assert.Empty(t, got[2].Category)
	assert.Zero(t, got[2].BookingCount)
}

func TestGuests_StableForEqualRanks(t *testing.T) {
	st := store.NewBookingStore()
	guests := &stubGuests{guests: []domain.Guest{
		{ID: "g1", Name: "Ahmed Khan"},
		{ID: "g2", Name: "Fatima Rahman"},
	}}
	svc := NewService(stubRooms{}, guests, st)

	got, err := svc.Guests(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "g1", got[0].ID)
	assert.Equal(t, "g2", got[1].ID)
}
