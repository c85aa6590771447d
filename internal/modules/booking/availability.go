package booking

import (
	"context"

	"hoteldesk/internal/domain"
)

// IsRoomAvailable reports whether no live booking for the room overlaps the
// inclusive day range [startDate, endDate]. excludeBookingID lets an
// edit-in-place check ignore the booking being edited; pass "" otherwise.
func (s *Service) IsRoomAvailable(roomID, startDate, endDate, excludeBookingID string) (bool, error) {
	from, err := domain.ParseDay(startDate)
	if err != nil {
		return false, ErrValidation
	}
	to, err := domain.ParseDay(endDate)
	if err != nil {
		return false, ErrValidation
	}

	for _, b := range s.store.GetByRoom(roomID) {
		if excludeBookingID != "" && b.ID == excludeBookingID {
			continue
		}
		if !b.BlocksRoom() {
			continue
		}
		if b.Overlaps(from, to) {
			return false, nil
		}
	}
	return true, nil
}

// AvailableRoomIDs returns the rooms referenced by any booking that have no
// live booking overlapping the range. Rooms with zero bookings never appear
// here; AvailableRooms intersects the result with the registry for the
// authoritative answer.
func (s *Service) AvailableRoomIDs(startDate, endDate string) ([]string, error) {
	from, err := domain.ParseDay(startDate)
	if err != nil {
		return nil, ErrValidation
	}
	to, err := domain.ParseDay(endDate)
	if err != nil {
		return nil, ErrValidation
	}

	all := s.store.GetAll()
	occupied := make(map[string]bool)
	for _, b := range all {
		if b.BlocksRoom() && b.Overlaps(from, to) {
			occupied[b.RoomID] = true
		}
	}

	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, b := range all {
		if occupied[b.RoomID] || seen[b.RoomID] {
			continue
		}
		seen[b.RoomID] = true
		out = append(out, b.RoomID)
	}
	return out, nil
}

// AvailableRooms returns registry rooms free over the range: rooms with no
// bookings at all plus rooms whose bookings don't overlap it.
func (s *Service) AvailableRooms(ctx context.Context, startDate, endDate string) ([]domain.Room, error) {
	from, err := domain.ParseDay(startDate)
	if err != nil {
		return nil, ErrValidation
	}
	to, err := domain.ParseDay(endDate)
	if err != nil {
		return nil, ErrValidation
	}

	occupied := make(map[string]bool)
	for _, b := range s.store.GetAll() {
		if b.BlocksRoom() && b.Overlaps(from, to) {
			occupied[b.RoomID] = true
		}
	}

	rooms, err := s.rooms.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Room, 0, len(rooms))
	for _, r := range rooms {
		if !occupied[r.ID] {
			out = append(out, r)
		}
	}
	return out, nil
}

// OccupiedRoomIDs returns rooms with a guest physically present today:
// checked in, not checked out, stay window containing today.
func (s *Service) OccupiedRoomIDs() []string {
	today := domain.Day(s.now())

	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, b := range s.store.GetAll() {
		if b.CheckInDateTime == nil || b.CheckOutDateTime != nil {
			continue
		}
		if !b.ContainsDay(today) || seen[b.RoomID] {
			continue
		}
		seen[b.RoomID] = true
		out = append(out, b.RoomID)
	}
	return out
}

// BookedRoomIDs returns rooms with any live booking whose stay window
// contains the given date, checked in or not.
func (s *Service) BookedRoomIDs(date string) ([]string, error) {
	day, err := domain.ParseDay(date)
	if err != nil {
		return nil, ErrValidation
	}

	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, b := range s.store.GetAll() {
		if !b.BlocksRoom() || !b.ContainsDay(day) || seen[b.RoomID] {
			continue
		}
		seen[b.RoomID] = true
		out = append(out, b.RoomID)
	}
	return out, nil
}

// CurrentBookingsForRoom returns the room's checked-in stays whose window
// contains today.
func (s *Service) CurrentBookingsForRoom(roomID string) []domain.Booking {
	today := domain.Day(s.now())

	out := make([]domain.Booking, 0)
	for _, b := range s.store.GetByRoom(roomID) {
		if b.CheckInDateTime == nil || b.CheckOutDateTime != nil {
			continue
		}
		if b.ContainsDay(today) {
			out = append(out, b)
		}
	}
	return out
}

// FutureBookingsForRoom returns the room's live bookings starting today or
// later.
func (s *Service) FutureBookingsForRoom(roomID string) []domain.Booking {
	today := domain.Day(s.now())

	out := make([]domain.Booking, 0)
	for _, b := range s.store.GetByRoom(roomID) {
		if !b.BlocksRoom() {
			continue
		}
		start, err := b.StayStart()
		if err != nil {
			continue
		}
		if !start.Before(today) {
			out = append(out, b)
		}
	}
	return out
}

// PastBookingsForRoom returns the room's checked-out stays.
func (s *Service) PastBookingsForRoom(roomID string) []domain.Booking {
	out := make([]domain.Booking, 0)
	for _, b := range s.store.GetByRoom(roomID) {
		if b.CheckOutDateTime != nil {
			out = append(out, b)
		}
	}
	return out
}
