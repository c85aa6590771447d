package requests

import (
	"net/http"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the requester-facing routes. Any authenticated user
// may file a request and see their own.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings/:id/cancellation-request", h.RequestCancellation)
	rg.GET("/cancellation-requests", h.ListRequests)
}

// RegisterAdminRoutes mounts the resolution routes; the caller wraps them in
// the admin-only middleware.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/cancellation-requests/pending", h.ListPending)
	rg.POST("/cancellation-requests/:id/approve", h.Approve)
	rg.POST("/cancellation-requests/:id/reject", h.Reject)
}

func (h *Handler) RequestCancellation(c *gin.Context) {
	userID := c.GetInt64("user_id")

	id, err := h.service.RequestCancellation(c.Param("id"), userID)
	if err != nil {
		switch err {
		case ErrBookingNotCancellable:
			response.Error(c, http.StatusConflict, "NOT_CANCELLABLE", "Cannot request cancellation for this booking")
		case ErrRequestAlreadyExists:
			response.Error(c, http.StatusConflict, "REQUEST_EXISTS", "Cancellation request already exists or has been reviewed")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create cancellation request")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"request_id": id})
}

// ListRequests shows admins every request joined with its booking, and
// other users only their own.
func (h *Handler) ListRequests(c *gin.Context) {
	if c.GetString("role") == string(domain.RoleAdmin) {
		response.Success(c, http.StatusOK, gin.H{"requests": h.service.RequestViews()})
		return
	}
	response.Success(c, http.StatusOK, gin.H{"requests": h.service.RequestsBy(c.GetInt64("user_id"))})
}

func (h *Handler) ListPending(c *gin.Context) {
	pending := h.service.PendingRequests()
	response.Success(c, http.StatusOK, gin.H{
		"requests": pending,
		"count":    len(pending),
	})
}

func (h *Handler) Approve(c *gin.Context) {
	if !h.service.ApproveCancellation(c.Param("id"), c.GetInt64("user_id")) {
		response.Error(c, http.StatusConflict, "RESOLVE_REJECTED", "Request is missing or already resolved")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"approved": true})
}

func (h *Handler) Reject(c *gin.Context) {
	if !h.service.RejectCancellation(c.Param("id"), c.GetInt64("user_id")) {
		response.Error(c, http.StatusConflict, "RESOLVE_REJECTED", "Request is missing or already resolved")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rejected": true})
}
