package registry

import (
	"net/http"

	"hoteldesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/rooms", h.ListRooms)
	rg.GET("/rooms/:id", h.GetRoom)
	rg.GET("/guests", h.ListGuests)
	rg.GET("/guests/:id", h.GetGuest)
}

func (h *Handler) ListRooms(c *gin.Context) {
	rooms, err := h.service.Rooms(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load rooms")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) GetRoom(c *gin.Context) {
	room, err := h.service.RoomByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load room")
		return
	}
	if room == nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func (h *Handler) ListGuests(c *gin.Context) {
	guests, err := h.service.Guests(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load guests")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"guests": guests})
}

func (h *Handler) GetGuest(c *gin.Context) {
	guest, err := h.service.GuestByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load guest")
		return
	}
	if guest == nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Guest not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"guest": guest})
}
