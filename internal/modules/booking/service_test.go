package booking

import (
	"context"
	"testing"
	"time"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRooms struct {
	rooms map[string]domain.Room
}

func (s *stubRooms) GetByID(_ context.Context, id string) (*domain.Room, error) {
	if r, ok := s.rooms[id]; ok {
		return &r, nil
	}
	return nil, nil
}

func (s *stubRooms) GetAll(_ context.Context) ([]domain.Room, error) {
	out := make([]domain.Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		out = append(out, r)
	}
	return out, nil
}

type stubGuests struct {
	guests map[string]domain.Guest
}

func (s *stubGuests) GetByID(_ context.Context, id string) (*domain.Guest, error) {
	if g, ok := s.guests[id]; ok {
		return &g, nil
	}
	return nil, nil
}

func newTestService() *Service {
	rooms := &stubRooms{rooms: map[string]domain.Room{
		"room-1": {ID: "room-1", RoomNumber: "101", Category: domain.RoomStandard, Floor: 1},
		"room-2": {ID: "room-2", RoomNumber: "102", Category: domain.RoomDeluxe, Floor: 1},
	}}
	guests := &stubGuests{guests: map[string]domain.Guest{
		"guest-1": {ID: "guest-1", Name: "Ahmed Khan", NationalID: "BX782435", Phone: "01712345678"},
	}}
	return NewService(store.NewBookingStore(), rooms, guests)
}

func createReq() CreateBookingRequest {
	return CreateBookingRequest{
		RoomID:         "room-1",
		GuestID:        "guest-1",
		NumberOfPeople: 2,
		TotalAmount:    decimal.NewFromInt(300),
		PaidAmount:     decimal.NewFromInt(100),
		BookingDate:    "2024-01-10",
		DurationDays:   3,
	}
}

func TestCreateBooking_SnapshotsGuest(t *testing.T) {
	svc := newTestService()

	b, err := svc.CreateBooking(context.Background(), createReq())
	require.NoError(t, err)
	require.NotNil(t, b)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "Ahmed Khan", b.GuestName)
	assert.Equal(t, "BX782435", b.NationalID)
	assert.Equal(t, "01712345678", b.Phone)
	assert.Nil(t, b.CheckInDateTime)
	assert.Nil(t, b.CancelledAt)
}

func TestCreateBooking_Validation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	bad := createReq()
	bad.BookingDate = "10/01/2024"
	_, err := svc.CreateBooking(ctx, bad)
	assert.ErrorIs(t, err, ErrValidation)

	bad = createReq()
	bad.DurationDays = 0
	_, err = svc.CreateBooking(ctx, bad)
	assert.ErrorIs(t, err, ErrValidation)

	bad = createReq()
	bad.PaidAmount = decimal.NewFromInt(500)
	_, err = svc.CreateBooking(ctx, bad)
	assert.ErrorIs(t, err, ErrValidation)

	bad = createReq()
	bad.RoomID = "no-such-room"
	_, err = svc.CreateBooking(ctx, bad)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	bad = createReq()
	bad.GuestID = "no-such-guest"
	_, err = svc.CreateBooking(ctx, bad)
	assert.ErrorIs(t, err, ErrGuestNotFound)
}

func TestCreateBooking_RejectsOverlap(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.CreateBooking(ctx, createReq())
	require.NoError(t, err)

	conflict := createReq()
	conflict.BookingDate = "2024-01-12"
	_, err = svc.CreateBooking(ctx, conflict)
	assert.ErrorIs(t, err, ErrNotAvailable)

	// same dates, different room
	other := createReq()
	other.RoomID = "room-2"
	_, err = svc.CreateBooking(ctx, other)
	assert.NoError(t, err)

	// day after the departure day is free again
	later := createReq()
	later.BookingDate = "2024-01-14"
	_, err = svc.CreateBooking(ctx, later)
	assert.NoError(t, err)
}

func TestCreateBooking_CancelledBookingFreesRoom(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	b, err := svc.CreateBooking(ctx, createReq())
	require.NoError(t, err)
	require.True(t, svc.CancelBooking(b.ID))

	_, err = svc.CreateBooking(ctx, createReq())
	assert.NoError(t, err)
}

func TestUpdateBooking_PartialMerge(t *testing.T) {
	svc := newTestService()
	b, err := svc.CreateBooking(context.Background(), createReq())
	require.NoError(t, err)

	people := 4
	require.True(t, svc.UpdateBooking(b.ID, UpdateBookingRequest{NumberOfPeople: &people}))

	got, ok := svc.GetBooking(b.ID)
	require.True(t, ok)
	assert.Equal(t, 4, got.NumberOfPeople)
	assert.Equal(t, "Ahmed Khan", got.GuestName)
	assert.Equal(t, "2024-01-10", got.BookingDate)

	assert.False(t, svc.UpdateBooking("missing", UpdateBookingRequest{NumberOfPeople: &people}))
}

func TestCheckInCheckOutLifecycle(t *testing.T) {
	svc := newTestService()
	fixed := time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	b, err := svc.CreateBooking(context.Background(), createReq())
	require.NoError(t, err)

	// cannot check out before checking in
	assert.False(t, svc.CheckOut(b.ID))

	require.True(t, svc.CheckIn(b.ID))
	got, _ := svc.GetBooking(b.ID)
	require.NotNil(t, got.CheckInDateTime)
	assert.Equal(t, fixed, *got.CheckInDateTime)

	// double check-in rejected
	assert.False(t, svc.CheckIn(b.ID))

	// checked-in booking cannot be cancelled
	assert.False(t, svc.CancelBooking(b.ID))

	require.True(t, svc.CheckOut(b.ID))
	got, _ = svc.GetBooking(b.ID)
	require.NotNil(t, got.CheckOutDateTime)
	assert.Equal(t, fixed, *got.CheckOutDateTime)

	// double check-out rejected
	assert.False(t, svc.CheckOut(b.ID))
}

func TestCancelBooking(t *testing.T) {
	svc := newTestService()
	fixed := time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	b, err := svc.CreateBooking(context.Background(), createReq())
	require.NoError(t, err)

	require.True(t, svc.CancelBooking(b.ID))
	got, _ := svc.GetBooking(b.ID)
	require.NotNil(t, got.CancelledAt)
	assert.Equal(t, fixed, *got.CancelledAt)

	// already cancelled
	assert.False(t, svc.CancelBooking(b.ID))

	assert.False(t, svc.CancelBooking("missing"))
	assert.False(t, svc.CheckIn("missing"))
	assert.False(t, svc.CheckOut("missing"))
}

func TestCheckIn_PurgesPendingRequest(t *testing.T) {
	st := store.NewBookingStore()
	svc := NewService(st, &stubRooms{rooms: map[string]domain.Room{
		"room-1": {ID: "room-1", RoomNumber: "101"},
	}}, &stubGuests{guests: map[string]domain.Guest{
		"guest-1": {ID: "guest-1", Name: "Ahmed Khan"},
	}})

	b, err := svc.CreateBooking(context.Background(), createReq())
	require.NoError(t, err)
	st.AddRequest(domain.CancellationRequest{
		BookingID:   b.ID,
		RequestedBy: 5,
		RequestedAt: time.Now(),
		Status:      domain.RequestPending,
	})

	require.True(t, svc.CheckIn(b.ID))

	_, ok := svc.RequestForBooking(b.ID)
	assert.False(t, ok, "pending request should vanish when the guest arrives")
}

func TestListBookings_DisplayOrder(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	past := createReq()
	past.BookingDate = "2024-01-01"
	pb, err := svc.CreateBooking(ctx, past)
	require.NoError(t, err)
	require.True(t, svc.CheckIn(pb.ID))
	require.True(t, svc.CheckOut(pb.ID))

	upcoming := createReq()
	upcoming.BookingDate = "2024-02-01"
	ub, err := svc.CreateBooking(ctx, upcoming)
	require.NoError(t, err)

	active := createReq()
	active.RoomID = "room-2"
	active.BookingDate = "2024-01-10"
	ab, err := svc.CreateBooking(ctx, active)
	require.NoError(t, err)
	require.True(t, svc.CheckIn(ab.ID))

	list := svc.ListBookings()
	require.Len(t, list, 3)
	assert.Equal(t, ab.ID, list[0].ID, "active stay first")
	assert.Equal(t, ub.ID, list[1].ID, "then upcoming")
	assert.Equal(t, pb.ID, list[2].ID, "past last")
}
