package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/iliyamo/meeting-room-booking/internal/model"
	"github.com/iliyamo/meeting-room-booking/internal/pricing"
	"github.com/iliyamo/meeting-room-booking/internal/utils"
)

// RoomRegistry is the read side of the room inventory the booking core
// depends on.
type RoomRegistry interface {
	Room(id string) (model.Room, bool)
	Rooms() []model.Room
	AddRoom(r model.Room) error
}

// BookingStore is the persistence collaborator for bookings. The core only
// reads collections and issues two writes: saving a new booking and flipping
// a status.
type BookingStore interface {
	SaveBooking(b model.Booking)
	Booking(id string) (model.Booking, bool)
	Bookings() []model.Booking
	BookingsByRoom(roomID string) []model.Booking
	UpdateBookingStatus(id string, status model.Status) (model.Booking, bool)
}

// Events receives booking lifecycle notifications. Publishing is
// fire-and-forget: a failed or absent broker never fails the request.
type Events interface {
	BookingConfirmed(ctx context.Context, b model.Booking, room model.Room)
	BookingCancelled(ctx context.Context, b model.Booking)
}

// CreateBookingRequest is the boundary shape of a creation request.
// Timestamps arrive as RFC3339 strings and are parsed on entry.
type CreateBookingRequest struct {
	RoomID    string `json:"roomId"`
	UserName  string `json:"userName"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// CreateBookingResponse is returned to the caller after a successful
// creation.
type CreateBookingResponse struct {
	BookingID  string       `json:"bookingId"`
	RoomID     string       `json:"roomId"`
	UserName   string       `json:"userName"`
	TotalPrice float64      `json:"totalPrice"`
	Status     model.Status `json:"status"`
}

// BookingService composes validation, pricing and the store into the two
// booking operations plus the read and preview paths.
type BookingService struct {
	rooms     RoomRegistry
	store     BookingStore
	validator *Validator
	engine    *pricing.Engine
	clock     Clock
	events    Events
}

// NewBookingService wires the booking core. events may be nil.
func NewBookingService(rooms RoomRegistry, store BookingStore, v *Validator, e *pricing.Engine, clock Clock, events Events) *BookingService {
	return &BookingService{rooms: rooms, store: store, validator: v, engine: e, clock: clock, events: events}
}

// CreateBooking runs the full creation pipeline: field validation (all
// violations collected), timestamp parsing, time-window rules, room lookup,
// conflict check against the room's confirmed bookings, pricing, then the
// single persistence write. The conflict check and the write are not atomic;
// two concurrent overlapping requests can both pass the check. Accepted
// limitation of the in-memory design.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*CreateBookingResponse, error) {
	if violations := s.validator.CheckInput(req); len(violations) > 0 {
		return nil, &Rejection{
			Kind:       KindInvalidInput,
			Reason:     strings.Join(violations, ", "),
			Violations: violations,
		}
	}

	start, err := parseTimestamp(req.StartTime)
	if err != nil {
		return nil, invalidInput("invalid start time %q: expected RFC3339", req.StartTime)
	}
	end, err := parseTimestamp(req.EndTime)
	if err != nil {
		return nil, invalidInput("invalid end time %q: expected RFC3339", req.EndTime)
	}

	if err := s.validator.CheckTimes(s.clock.Now(), start, end); err != nil {
		return nil, err
	}

	room, ok := s.rooms.Room(req.RoomID)
	if !ok {
		return nil, notFound("room with id %s not found", req.RoomID)
	}

	if hit := s.validator.FindConflict(room.ID, start, end, s.store.BookingsByRoom(room.ID), ""); hit != nil {
		return nil, &Rejection{
			Kind:     KindConflict,
			Reason:   s.validator.conflictMessage(hit),
			Conflict: hit,
		}
	}

	quote := s.engine.Quote(start, end, room.BaseHourlyRate)

	booking := model.Booking{
		ID:         utils.NewID("b"),
		RoomID:     room.ID,
		UserName:   strings.TrimSpace(req.UserName),
		StartTime:  start,
		EndTime:    end,
		TotalPrice: quote.TotalPrice,
		Status:     model.StatusConfirmed,
		CreatedAt:  s.clock.Now().UTC(),
	}
	s.store.SaveBooking(booking)

	if s.events != nil {
		s.events.BookingConfirmed(ctx, booking, room)
	}

	return &CreateBookingResponse{
		BookingID:  booking.ID,
		RoomID:     booking.RoomID,
		UserName:   booking.UserName,
		TotalPrice: booking.TotalPrice,
		Status:     booking.Status,
	}, nil
}

// CancelBooking transitions a booking to CANCELLED when the eligibility
// rules allow it. The transition is one-way; cancelling twice fails with the
// same reason every time and never touches state again.
func (s *BookingService) CancelBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, ok := s.store.Booking(id)
	if !ok {
		return model.Booking{}, notFound("booking with id %s not found", id)
	}
	if err := s.validator.CheckCancellation(s.clock.Now(), booking); err != nil {
		return model.Booking{}, err
	}
	updated, ok := s.store.UpdateBookingStatus(id, model.StatusCancelled)
	if !ok {
		return model.Booking{}, notFound("booking with id %s not found", id)
	}
	if s.events != nil {
		s.events.BookingCancelled(ctx, updated)
	}
	return updated, nil
}

// Booking returns one booking by id.
func (s *BookingService) Booking(id string) (model.Booking, error) {
	b, ok := s.store.Booking(id)
	if !ok {
		return model.Booking{}, notFound("booking with id %s not found", id)
	}
	return b, nil
}

// Bookings returns all bookings, newest created first.
func (s *BookingService) Bookings() []model.Booking {
	out := s.store.Bookings()
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// BookingsByRoom returns all bookings for one room, newest created first.
func (s *BookingService) BookingsByRoom(roomID string) []model.Booking {
	out := s.store.BookingsByRoom(roomID)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// PreviewQuote prices an interval for a room without creating anything. The
// same time-window rules apply, but conflicts are not checked: a preview of
// an occupied slot is still a valid question.
func (s *BookingService) PreviewQuote(roomID, startStr, endStr string) (model.Quote, error) {
	if strings.TrimSpace(roomID) == "" {
		return model.Quote{}, invalidInput("room id is required")
	}
	start, err := parseTimestamp(startStr)
	if err != nil {
		return model.Quote{}, invalidInput("invalid start time %q: expected RFC3339", startStr)
	}
	end, err := parseTimestamp(endStr)
	if err != nil {
		return model.Quote{}, invalidInput("invalid end time %q: expected RFC3339", endStr)
	}
	if err := s.validator.CheckTimes(s.clock.Now(), start, end); err != nil {
		return model.Quote{}, err
	}
	room, ok := s.rooms.Room(roomID)
	if !ok {
		return model.Quote{}, notFound("room with id %s not found", roomID)
	}
	return s.engine.Quote(start, end, room.BaseHourlyRate), nil
}

// PricingInfo returns the display rate structure for a room.
func (s *BookingService) PricingInfo(roomID string) (model.PricingInfo, error) {
	room, ok := s.rooms.Room(roomID)
	if !ok {
		return model.PricingInfo{}, notFound("room with id %s not found", roomID)
	}
	return s.engine.Info(room.BaseHourlyRate), nil
}

// parseTimestamp converts an RFC3339 boundary string to a UTC time.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
