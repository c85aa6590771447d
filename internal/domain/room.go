package domain

import "time"

type RoomCategory string

const (
	RoomStandard RoomCategory = "Standard"
	RoomDeluxe   RoomCategory = "Deluxe"
	RoomSuite    RoomCategory = "Suite"
)

// Room is a registry record. The registry owns the authoritative room list;
// the booking engine only references rooms by id.
type Room struct {
	ID         string       `json:"id" gorm:"primaryKey"`
	RoomNumber string       `json:"room_number" gorm:"uniqueIndex"`
	Category   RoomCategory `json:"category"`
	Floor      int          `json:"floor"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}
