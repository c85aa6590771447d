package domain

import "time"

// Guest is a registry record. Bookings snapshot the guest fields at booking
// time, so edits here never rewrite history.
type Guest struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name"`
	NationalID string    `json:"national_id"`
	Phone      string    `json:"phone"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
