package domain

import "time"

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// CancellationRequest asks an admin to cancel an upcoming booking. It is
// resolved at most once; approved and rejected are terminal.
type CancellationRequest struct {
	ID          string        `json:"id"`
	BookingID   string        `json:"booking_id"`
	RequestedBy int64         `json:"requested_by"`
	RequestedAt time.Time     `json:"requested_at"`
	Status      RequestStatus `json:"status"`
	ResolvedAt  *time.Time    `json:"resolved_at,omitempty"`
	ResolvedBy  *int64        `json:"resolved_by,omitempty"`
}
