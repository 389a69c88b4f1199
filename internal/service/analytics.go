package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/iliyamo/meeting-room-booking/internal/model"
	"github.com/iliyamo/meeting-room-booking/internal/pricing"
	"github.com/iliyamo/meeting-room-booking/internal/utils"
)

// AnalyticsService aggregates booking activity per room and overall. Only
// CONFIRMED bookings contribute hours and revenue; a booking belongs to a
// range when its start falls inside it (inclusive on both ends).
type AnalyticsService struct {
	rooms RoomRegistry
	store BookingStore
}

func NewAnalyticsService(rooms RoomRegistry, store BookingStore) *AnalyticsService {
	return &AnalyticsService{rooms: rooms, store: store}
}

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

// Analytics reports hours and revenue per room for [from, to], every room
// included (zero rows for idle rooms), sorted by revenue descending.
func (s *AnalyticsService) Analytics(from, to time.Time) ([]model.RoomAnalytics, error) {
	if from.After(to) {
		return nil, invalidInput("start date must be before end date")
	}

	hours := make(map[string]float64)
	revenue := make(map[string]float64)
	for _, b := range s.store.Bookings() {
		if b.Status != model.StatusConfirmed || !inRange(b.StartTime, from, to) {
			continue
		}
		hours[b.RoomID] += utils.HoursBetween(b.StartTime, b.EndTime)
		revenue[b.RoomID] += b.TotalPrice
	}

	out := make([]model.RoomAnalytics, 0)
	for _, room := range s.rooms.Rooms() {
		out = append(out, model.RoomAnalytics{
			RoomID:       room.ID,
			RoomName:     room.Name,
			TotalHours:   pricing.Round2(hours[room.ID]),
			TotalRevenue: pricing.Round2(revenue[room.ID]),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TotalRevenue > out[j].TotalRevenue })
	return out, nil
}

// RoomAnalytics reports one room's totals for [from, to].
func (s *AnalyticsService) RoomAnalytics(roomID string, from, to time.Time) (model.RoomAnalytics, error) {
	room, ok := s.rooms.Room(roomID)
	if !ok {
		return model.RoomAnalytics{}, notFound("room with id %s not found", roomID)
	}
	all, err := s.Analytics(from, to)
	if err != nil {
		return model.RoomAnalytics{}, err
	}
	for _, a := range all {
		if a.RoomID == roomID {
			return a, nil
		}
	}
	return model.RoomAnalytics{RoomID: room.ID, RoomName: room.Name}, nil
}

// Overview combines the per-room breakdown with totals across all rooms.
func (s *AnalyticsService) Overview(from, to time.Time) (model.OverallStats, error) {
	breakdown, err := s.Analytics(from, to)
	if err != nil {
		return model.OverallStats{}, err
	}

	var stats model.OverallStats
	stats.DateRange.From = from.UTC().Format(time.RFC3339)
	stats.DateRange.To = to.UTC().Format(time.RFC3339)
	for _, a := range breakdown {
		stats.Summary.TotalRevenue += a.TotalRevenue
		stats.Summary.TotalHours += a.TotalHours
		if a.TotalHours > 0 {
			stats.Summary.ActiveRooms++
		}
	}
	stats.Summary.TotalRooms = len(breakdown)
	stats.Summary.TotalRevenue = pricing.Round2(stats.Summary.TotalRevenue)
	stats.Summary.TotalHours = pricing.Round2(stats.Summary.TotalHours)
	if stats.Summary.TotalRooms > 0 {
		stats.Summary.AverageRevenuePerRoom = pricing.Round2(stats.Summary.TotalRevenue / float64(stats.Summary.TotalRooms))
	}
	stats.RoomBreakdown = breakdown
	return stats, nil
}

// Utilization counts booking outcomes for [from, to] and derives the
// cancellation rate as a percentage with two decimals.
func (s *AnalyticsService) Utilization(from, to time.Time) (model.UtilizationMetrics, error) {
	if from.After(to) {
		return model.UtilizationMetrics{}, invalidInput("start date must be before end date")
	}
	var m model.UtilizationMetrics
	for _, b := range s.store.Bookings() {
		switch {
		case b.Status == model.StatusConfirmed && inRange(b.StartTime, from, to):
			m.ConfirmedBookings++
		case b.Status == model.StatusCancelled && inRange(b.CreatedAt, from, to):
			m.CancelledBookings++
		}
	}
	m.TotalBookings = m.ConfirmedBookings + m.CancelledBookings
	rate := 0.0
	if m.TotalBookings > 0 {
		rate = pricing.Round2(float64(m.CancelledBookings) / float64(m.TotalBookings) * 100)
	}
	m.CancellationRate = fmt.Sprintf("%v%%", rate)
	return m, nil
}
