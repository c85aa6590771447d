package booking

import (
	"net/http"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	rooms   RoomRegistry
}

func NewHandler(service *Service, rooms RoomRegistry) *Handler {
	return &Handler{service: service, rooms: rooms}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.PATCH("/bookings/:id", h.UpdateBooking)
	rg.DELETE("/bookings/:id", h.DeleteBooking)
	rg.POST("/bookings/:id/check-in", h.CheckIn)
	rg.POST("/bookings/:id/check-out", h.CheckOut)
	rg.POST("/bookings/:id/cancel", h.Cancel)

	rg.GET("/availability/check", h.CheckAvailability)
	rg.GET("/availability/rooms", h.AvailableRooms)
	rg.GET("/availability/occupied", h.OccupiedRooms)
	rg.GET("/availability/booked", h.BookedRooms)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking fields")
		case ErrRoomNotFound:
			response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
		case ErrGuestNotFound:
			response.Error(c, http.StatusNotFound, "GUEST_NOT_FOUND", "Guest not found")
		case ErrNotAvailable:
			response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Room is not available for the selected dates")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

// ListBookings returns bookings in display order, optionally filtered by
// room_id or guest_id (filtered reads keep insertion order).
func (h *Handler) ListBookings(c *gin.Context) {
	if roomID := c.Query("room_id"); roomID != "" {
		response.Success(c, http.StatusOK, gin.H{"bookings": h.service.BookingsForRoom(roomID)})
		return
	}
	if guestID := c.Query("guest_id"); guestID != "" {
		response.Success(c, http.StatusOK, gin.H{"bookings": h.service.BookingsForGuest(guestID)})
		return
	}

	bookings := h.service.ListBookings()
	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, h.view(c, b))
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": views})
}

func (h *Handler) GetBooking(c *gin.Context) {
	b, ok := h.service.GetBooking(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": h.view(c, b)})
}

func (h *Handler) UpdateBooking(c *gin.Context) {
	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if !h.service.UpdateBooking(c.Param("id"), req) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		return
	}
	b, _ := h.service.GetBooking(c.Param("id"))
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	if !h.service.DeleteBooking(c.Param("id")) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) CheckIn(c *gin.Context) {
	if !h.service.CheckIn(c.Param("id")) {
		response.Error(c, http.StatusConflict, "CHECK_IN_REJECTED", "Booking is missing or already checked in")
		return
	}
	b, _ := h.service.GetBooking(c.Param("id"))
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) CheckOut(c *gin.Context) {
	if !h.service.CheckOut(c.Param("id")) {
		response.Error(c, http.StatusConflict, "CHECK_OUT_REJECTED", "Booking is missing, not checked in, or already checked out")
		return
	}
	b, _ := h.service.GetBooking(c.Param("id"))
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) Cancel(c *gin.Context) {
	if !h.service.CancelBooking(c.Param("id")) {
		response.Error(c, http.StatusConflict, "CANCEL_REJECTED", "Booking is missing, checked in, or already cancelled")
		return
	}
	b, _ := h.service.GetBooking(c.Param("id"))
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) CheckAvailability(c *gin.Context) {
	roomID := c.Query("room_id")
	start := c.Query("start")
	end := c.Query("end")
	if roomID == "" || start == "" || end == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "room_id, start and end are required")
		return
	}

	available, err := h.service.IsRoomAvailable(roomID, start, end, c.Query("exclude_booking_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date format, expected YYYY-MM-DD")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"available": available})
}

func (h *Handler) AvailableRooms(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "start and end are required")
		return
	}

	rooms, err := h.service.AvailableRooms(c.Request.Context(), start, end)
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date format, expected YYYY-MM-DD")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load rooms")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) OccupiedRooms(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"room_ids": h.service.OccupiedRoomIDs()})
}

func (h *Handler) BookedRooms(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date is required")
		return
	}

	ids, err := h.service.BookedRoomIDs(date)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date format, expected YYYY-MM-DD")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room_ids": ids})
}

func (h *Handler) view(c *gin.Context, b domain.Booking) BookingView {
	v := BookingView{Booking: b, Category: domain.Classify(&b).String()}
	if room, err := h.rooms.GetByID(c.Request.Context(), b.RoomID); err == nil && room != nil {
		v.RoomNumber = room.RoomNumber
	}
	if req, ok := h.service.RequestForBooking(b.ID); ok {
		v.Request = &RequestStatusView{ID: req.ID, Status: req.Status, RequestedAt: req.RequestedAt}
	}
	return v
}
