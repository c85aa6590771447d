package requests

import (
	"context"
	"testing"
	"time"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/modules/booking"
	"hoteldesk/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRooms struct{}

func (stubRooms) GetByID(_ context.Context, id string) (*domain.Room, error) {
	return &domain.Room{ID: id, RoomNumber: "101"}, nil
}

func (stubRooms) GetAll(_ context.Context) ([]domain.Room, error) { return nil, nil }

type stubGuests struct{}

func (stubGuests) GetByID(_ context.Context, id string) (*domain.Guest, error) {
	return &domain.Guest{ID: id, Name: "Fatima Rahman", NationalID: "AZ567890"}, nil
}

// newWorkflow wires the workflow against the real store and booking service
// so approval exercises the actual cancellation guards.
func newWorkflow(t *testing.T) (*Service, *booking.Service, *store.BookingStore, string) {
	t.Helper()

	st := store.NewBookingStore()
	bookings := booking.NewService(st, stubRooms{}, stubGuests{})
	svc := NewService(st, bookings)

	b, err := bookings.CreateBooking(context.Background(), booking.CreateBookingRequest{
		RoomID:         "room-1",
		GuestID:        "guest-1",
		NumberOfPeople: 2,
		TotalAmount:    decimal.NewFromInt(200),
		PaidAmount:     decimal.NewFromInt(50),
		BookingDate:    "2024-01-10",
		DurationDays:   2,
	})
	require.NoError(t, err)
	return svc, bookings, st, b.ID
}

func TestRequestCancellation(t *testing.T) {
	svc, _, _, bookingID := newWorkflow(t)
	fixed := time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	id, err := svc.RequestCancellation(bookingID, 5)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	pending := svc.PendingRequests()
	require.Len(t, pending, 1)
	assert.Equal(t, bookingID, pending[0].BookingID)
	assert.Equal(t, int64(5), pending[0].RequestedBy)
	assert.Equal(t, fixed, pending[0].RequestedAt)
	assert.Equal(t, domain.RequestPending, pending[0].Status)
}

func TestRequestCancellation_Guards(t *testing.T) {
	svc, bookings, _, bookingID := newWorkflow(t)

	_, err := svc.RequestCancellation("missing", 5)
	assert.ErrorIs(t, err, ErrBookingNotCancellable)

	_, err = svc.RequestCancellation(bookingID, 5)
	require.NoError(t, err)
	_, err = svc.RequestCancellation(bookingID, 6)
	assert.ErrorIs(t, err, ErrRequestAlreadyExists)

	require.True(t, bookings.CheckIn(bookingID))
	_, err = svc.RequestCancellation(bookingID, 5)
	assert.ErrorIs(t, err, ErrBookingNotCancellable)
}

func TestRequestCancellation_ResolvedRequestBlocksReRequest(t *testing.T) {
	svc, _, _, bookingID := newWorkflow(t)

	id, err := svc.RequestCancellation(bookingID, 5)
	require.NoError(t, err)
	require.True(t, svc.RejectCancellation(id, 1))

	// the booking is still cancellable, but its request history is permanent
	_, err = svc.RequestCancellation(bookingID, 5)
	assert.ErrorIs(t, err, ErrRequestAlreadyExists)
}

func TestApproveCancellation(t *testing.T) {
	svc, bookings, _, bookingID := newWorkflow(t)
	fixed := time.Date(2024, 1, 9, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	id, err := svc.RequestCancellation(bookingID, 5)
	require.NoError(t, err)

	require.True(t, svc.ApproveCancellation(id, 1))

	req, ok := svc.store.GetRequest(id)
	require.True(t, ok)
	assert.Equal(t, domain.RequestApproved, req.Status)
	require.NotNil(t, req.ResolvedAt)
	assert.Equal(t, fixed, *req.ResolvedAt)
	require.NotNil(t, req.ResolvedBy)
	assert.Equal(t, int64(1), *req.ResolvedBy)

	b, ok := bookings.GetBooking(bookingID)
	require.True(t, ok)
	assert.NotNil(t, b.CancelledAt, "approval cancels the booking")

	assert.Empty(t, svc.PendingRequests())

	// terminal: cannot approve or reject again
	assert.False(t, svc.ApproveCancellation(id, 1))
	assert.False(t, svc.RejectCancellation(id, 1))
	assert.False(t, svc.ApproveCancellation("missing", 1))
}

func TestApproveCancellation_AfterCheckIn(t *testing.T) {
	svc, bookings, _, bookingID := newWorkflow(t)

	id, err := svc.RequestCancellation(bookingID, 5)
	require.NoError(t, err)

	// the guest arrived while the request sat in the queue; check-in drops the
	// pending request but the admin still holds its id
	require.True(t, bookings.CheckIn(bookingID))

	// the request is gone, so approval has nothing to transition
	assert.False(t, svc.ApproveCancellation(id, 1))

	b, _ := bookings.GetBooking(bookingID)
	assert.Nil(t, b.CancelledAt, "checked-in booking stays uncancelled")
}

func TestRejectCancellation_LeavesBookingAlone(t *testing.T) {
	svc, bookings, _, bookingID := newWorkflow(t)

	id, err := svc.RequestCancellation(bookingID, 5)
	require.NoError(t, err)
	require.True(t, svc.RejectCancellation(id, 1))

	req, ok := svc.store.GetRequest(id)
	require.True(t, ok)
	assert.Equal(t, domain.RequestRejected, req.Status)

	b, _ := bookings.GetBooking(bookingID)
	assert.Nil(t, b.CancelledAt)
	assert.Empty(t, svc.PendingRequests())
}

func TestRequestViews_JoinsBooking(t *testing.T) {
	svc, bookings, _, bookingID := newWorkflow(t)

	_, err := svc.RequestCancellation(bookingID, 5)
	require.NoError(t, err)

	views := svc.RequestViews()
	require.Len(t, views, 1)
	require.NotNil(t, views[0].Booking)
	assert.Equal(t, bookingID, views[0].Booking.ID)
	assert.Equal(t, "Fatima Rahman", views[0].Booking.GuestName)

	// a deleted booking leaves the request with no snapshot
	require.True(t, bookings.DeleteBooking(bookingID))
	views = svc.RequestViews()
	require.Len(t, views, 1)
	assert.Nil(t, views[0].Booking)
}

func TestRequestsBy(t *testing.T) {
	svc, bookings, _, bookingID := newWorkflow(t)

	b2, err := bookings.CreateBooking(context.Background(), booking.CreateBookingRequest{
		RoomID:         "room-2",
		GuestID:        "guest-2",
		NumberOfPeople: 1,
		TotalAmount:    decimal.NewFromInt(100),
		BookingDate:    "2024-02-01",
		DurationDays:   1,
	})
	require.NoError(t, err)

	_, err = svc.RequestCancellation(bookingID, 5)
	require.NoError(t, err)
	_, err = svc.RequestCancellation(b2.ID, 6)
	require.NoError(t, err)

	mine := svc.RequestsBy(5)
	require.Len(t, mine, 1)
	assert.Equal(t, bookingID, mine[0].BookingID)
	assert.Empty(t, svc.RequestsBy(9))
}
