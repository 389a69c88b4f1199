package service

import (
	"errors"
	"strings"

	"github.com/iliyamo/meeting-room-booking/internal/model"
	"github.com/iliyamo/meeting-room-booking/internal/repository"
)

// RoomService exposes the room inventory and its per-room booking counters.
type RoomService struct {
	rooms RoomRegistry
	store BookingStore
}

func NewRoomService(rooms RoomRegistry, store BookingStore) *RoomService {
	return &RoomService{rooms: rooms, store: store}
}

// Rooms lists every room.
func (s *RoomService) Rooms() []model.Room {
	return s.rooms.Rooms()
}

// Room returns one room by id.
func (s *RoomService) Room(id string) (model.Room, error) {
	r, ok := s.rooms.Room(id)
	if !ok {
		return model.Room{}, notFound("room with id %s not found", id)
	}
	return r, nil
}

// AddRoom registers a new room. Admin operation; rooms are immutable once
// added, so a duplicate id is rejected rather than overwritten.
func (s *RoomService) AddRoom(r model.Room) (model.Room, error) {
	r.ID = strings.TrimSpace(r.ID)
	r.Name = strings.TrimSpace(r.Name)
	var violations []string
	if r.ID == "" {
		violations = append(violations, "room id is required")
	}
	if r.Name == "" {
		violations = append(violations, "room name is required")
	}
	if r.BaseHourlyRate <= 0 {
		violations = append(violations, "base hourly rate must be positive")
	}
	if r.Capacity <= 0 {
		violations = append(violations, "capacity must be positive")
	}
	if len(violations) > 0 {
		return model.Room{}, &Rejection{
			Kind:       KindInvalidInput,
			Reason:     strings.Join(violations, ", "),
			Violations: violations,
		}
	}
	if err := s.rooms.AddRoom(r); err != nil {
		if errors.Is(err, repository.ErrRoomExists) {
			return model.Room{}, &Rejection{Kind: KindConflict, Reason: "room with id " + r.ID + " already exists"}
		}
		return model.Room{}, err
	}
	return r, nil
}

// Stats counts a room's bookings by status.
func (s *RoomService) Stats(id string) (model.RoomStats, error) {
	room, ok := s.rooms.Room(id)
	if !ok {
		return model.RoomStats{}, notFound("room with id %s not found", id)
	}
	bookings := s.store.BookingsByRoom(id)
	stats := model.RoomStats{
		RoomID:        room.ID,
		RoomName:      room.Name,
		TotalBookings: len(bookings),
	}
	for _, b := range bookings {
		if b.Status == model.StatusConfirmed {
			stats.ConfirmedBookings++
		} else {
			stats.CancelledBookings++
		}
	}
	return stats, nil
}
