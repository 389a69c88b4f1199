// Package repository implements the in-memory store that owns all Room and
// Booking records. There is deliberately no durability: the system is a
// single process over a single map, and everything is lost on restart.
package repository

import (
	"errors"
	"sort"
	"sync"

	"github.com/iliyamo/meeting-room-booking/internal/model"
)

// ErrRoomExists is returned when adding a room whose id is already taken.
var ErrRoomExists = errors.New("room already exists")

// Store holds rooms and bookings behind a single RWMutex. All accessors
// return copies so callers can never mutate stored records in place; writes
// go through SaveBooking and UpdateBookingStatus only.
type Store struct {
	mu       sync.RWMutex
	rooms    map[string]model.Room
	bookings map[string]model.Booking
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		rooms:    make(map[string]model.Room),
		bookings: make(map[string]model.Booking),
	}
}

// AddRoom registers a room. Room ids are unique and rooms are immutable once
// added, so a duplicate id is a conflict rather than an update.
func (s *Store) AddRoom(r model.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rooms[r.ID]; ok {
		return ErrRoomExists
	}
	s.rooms[r.ID] = r
	return nil
}

// Room returns the room with the given id.
func (s *Store) Room(id string) (model.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rooms[id]
	return r, ok
}

// Rooms returns all rooms sorted by id.
func (s *Store) Rooms() []model.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// SaveBooking inserts or replaces a booking record.
func (s *Store) SaveBooking(b model.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.ID] = b
}

// Booking returns the booking with the given id.
func (s *Store) Booking(id string) (model.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[id]
	return b, ok
}

// Bookings returns every booking in no particular order.
func (s *Store) Bookings() []model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, b)
	}
	return out
}

// BookingsByRoom returns every booking for the given room.
func (s *Store) BookingsByRoom(roomID string) []model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Booking
	for _, b := range s.bookings {
		if b.RoomID == roomID {
			out = append(out, b)
		}
	}
	return out
}

// UpdateBookingStatus sets the status of an existing booking and returns the
// updated record. The second return value is false when the id is unknown or
// the status is not a known state.
func (s *Store) UpdateBookingStatus(id string, status model.Status) (model.Booking, bool) {
	if !status.Valid() {
		return model.Booking{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return model.Booking{}, false
	}
	b.Status = status
	s.bookings[id] = b
	return b, true
}

// Clear drops all rooms and bookings. Test helper.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms = make(map[string]model.Room)
	s.bookings = make(map[string]model.Booking)
}
