package repository

import (
	"log"

	"github.com/iliyamo/meeting-room-booking/internal/model"
)

// Seed loads the initial room inventory. Called once at startup before the
// server accepts requests.
func Seed(s *Store) {
	rooms := []model.Room{
		{ID: "101", Name: "Conference Room A", BaseHourlyRate: 500, Capacity: 10},
		{ID: "102", Name: "Meeting Pod B", BaseHourlyRate: 300, Capacity: 4},
		{ID: "103", Name: "Executive Suite C", BaseHourlyRate: 800, Capacity: 15},
		{ID: "104", Name: "Focus Cabin D", BaseHourlyRate: 200, Capacity: 2},
		{ID: "105", Name: "Board Room E", BaseHourlyRate: 1000, Capacity: 20},
	}
	for _, r := range rooms {
		if err := s.AddRoom(r); err != nil {
			log.Printf("seed: skipping room %s: %v", r.ID, err)
		}
	}
	log.Printf("seeded %d rooms", len(rooms))
}
