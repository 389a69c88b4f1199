package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/meeting-room-booking/internal/config"
	"github.com/iliyamo/meeting-room-booking/internal/model"
	"github.com/iliyamo/meeting-room-booking/internal/pricing"
	"github.com/iliyamo/meeting-room-booking/internal/repository"
)

type fakeClock struct{ t time.Time }

func (c fakeClock) Now() time.Time { return c.t }

// newBookingFixture builds a service over a fresh store with room 101
// (rate 500) and a clock frozen at Thursday 2026-01-01 00:00 UTC.
func newBookingFixture(t *testing.T) (*BookingService, *repository.Store) {
	t.Helper()
	store := repository.NewStore()
	require.NoError(t, store.AddRoom(model.Room{ID: "101", Name: "Conference Room A", BaseHourlyRate: 500, Capacity: 10}))

	cfg := config.Config{
		Timezone: time.UTC,
		Peak: config.PeakHours{
			MorningStart: 10, MorningEnd: 13,
			EveningStart: 16, EveningEnd: 19,
			Multiplier: 1.5,
			Weekdays: map[time.Weekday]bool{
				time.Monday: true, time.Tuesday: true, time.Wednesday: true,
				time.Thursday: true, time.Friday: true,
			},
		},
		Rules: config.BookingRules{MaxDurationHours: 12, MinCancellationHours: 2},
	}
	svc := NewBookingService(
		store, store,
		NewValidator(cfg.Rules, cfg.Timezone),
		pricing.NewEngine(cfg),
		fakeClock{datetime(2026, 1, 1, 0, 0)},
		nil,
	)
	return svc, store
}

func TestCreateBooking(t *testing.T) {
	svc, store := newBookingFixture(t)

	// Saturday morning, entirely off-peak: 2h x 500
	resp, err := svc.CreateBooking(context.Background(), CreateBookingRequest{
		RoomID:    "101",
		UserName:  "  Alice  ",
		StartTime: "2026-01-03T08:00:00Z",
		EndTime:   "2026-01-03T10:00:00Z",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.BookingID)
	assert.Equal(t, "101", resp.RoomID)
	assert.Equal(t, "Alice", resp.UserName)
	assert.Equal(t, 1000.0, resp.TotalPrice)
	assert.Equal(t, model.StatusConfirmed, resp.Status)

	saved, ok := store.Booking(resp.BookingID)
	require.True(t, ok)
	assert.Equal(t, model.StatusConfirmed, saved.Status)
	assert.Equal(t, datetime(2026, 1, 1, 0, 0), saved.CreatedAt)
}

func TestCreateBookingCollectsAllInputViolations(t *testing.T) {
	svc, _ := newBookingFixture(t)

	_, err := svc.CreateBooking(context.Background(), CreateBookingRequest{})

	rej := requireRejection(t, err, KindInvalidInput)
	assert.Len(t, rej.Violations, 4)
}

func TestCreateBookingRejectsBadTimestamps(t *testing.T) {
	svc, _ := newBookingFixture(t)

	_, err := svc.CreateBooking(context.Background(), CreateBookingRequest{
		RoomID: "101", UserName: "Alice",
		StartTime: "next tuesday", EndTime: "2026-01-03T10:00:00Z",
	})

	rej := requireRejection(t, err, KindInvalidInput)
	assert.Contains(t, rej.Reason, "invalid start time")
}

func TestCreateBookingRejectsPastStart(t *testing.T) {
	svc, _ := newBookingFixture(t)

	_, err := svc.CreateBooking(context.Background(), CreateBookingRequest{
		RoomID: "101", UserName: "Alice",
		StartTime: "2025-12-31T08:00:00Z", EndTime: "2025-12-31T10:00:00Z",
	})

	rej := requireRejection(t, err, KindInvalidInput)
	assert.Contains(t, rej.Reason, "past")
}

func TestCreateBookingUnknownRoom(t *testing.T) {
	svc, _ := newBookingFixture(t)

	_, err := svc.CreateBooking(context.Background(), CreateBookingRequest{
		RoomID: "999", UserName: "Alice",
		StartTime: "2026-01-03T08:00:00Z", EndTime: "2026-01-03T10:00:00Z",
	})

	requireRejection(t, err, KindNotFound)
}

func TestCreateBookingConflict(t *testing.T) {
	svc, _ := newBookingFixture(t)
	ctx := context.Background()

	first, err := svc.CreateBooking(ctx, CreateBookingRequest{
		RoomID: "101", UserName: "Alice",
		StartTime: "2026-01-03T08:00:00Z", EndTime: "2026-01-03T10:00:00Z",
	})
	require.NoError(t, err)

	_, err = svc.CreateBooking(ctx, CreateBookingRequest{
		RoomID: "101", UserName: "Bob",
		StartTime: "2026-01-03T09:00:00Z", EndTime: "2026-01-03T11:00:00Z",
	})
	rej := requireRejection(t, err, KindConflict)
	require.NotNil(t, rej.Conflict)
	assert.Equal(t, first.BookingID, rej.Conflict.ID)
	assert.Contains(t, rej.Reason, "already booked")

	// back-to-back with the first booking is fine
	_, err = svc.CreateBooking(ctx, CreateBookingRequest{
		RoomID: "101", UserName: "Bob",
		StartTime: "2026-01-03T10:00:00Z", EndTime: "2026-01-03T11:00:00Z",
	})
	assert.NoError(t, err)
}

func TestCancelBooking(t *testing.T) {
	svc, store := newBookingFixture(t)
	ctx := context.Background()

	resp, err := svc.CreateBooking(ctx, CreateBookingRequest{
		RoomID: "101", UserName: "Alice",
		StartTime: "2026-01-03T08:00:00Z", EndTime: "2026-01-03T10:00:00Z",
	})
	require.NoError(t, err)

	cancelled, err := svc.CancelBooking(ctx, resp.BookingID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, cancelled.Status)

	saved, ok := store.Booking(resp.BookingID)
	require.True(t, ok)
	assert.Equal(t, model.StatusCancelled, saved.Status)

	// second cancellation fails the same way and changes nothing
	_, err = svc.CancelBooking(ctx, resp.BookingID)
	rej := requireRejection(t, err, KindForbidden)
	assert.Contains(t, rej.Reason, "already cancelled")
}

func TestCancelBookingTooLate(t *testing.T) {
	svc, _ := newBookingFixture(t)
	ctx := context.Background()

	// starts one hour after the frozen clock; the 2h window has passed
	resp, err := svc.CreateBooking(ctx, CreateBookingRequest{
		RoomID: "101", UserName: "Alice",
		StartTime: "2026-01-01T01:00:00Z", EndTime: "2026-01-01T02:00:00Z",
	})
	require.NoError(t, err)

	_, err = svc.CancelBooking(ctx, resp.BookingID)
	rej := requireRejection(t, err, KindForbidden)
	assert.Contains(t, rej.Reason, "at least 2 hours")
}

func TestCancelBookingUnknownID(t *testing.T) {
	svc, _ := newBookingFixture(t)

	_, err := svc.CancelBooking(context.Background(), "nope")
	requireRejection(t, err, KindNotFound)
}

func TestBookingsNewestFirst(t *testing.T) {
	svc, store := newBookingFixture(t)

	store.SaveBooking(model.Booking{ID: "old", RoomID: "101", Status: model.StatusConfirmed,
		CreatedAt: datetime(2026, 1, 1, 8, 0)})
	store.SaveBooking(model.Booking{ID: "new", RoomID: "101", Status: model.StatusConfirmed,
		CreatedAt: datetime(2026, 1, 2, 8, 0)})

	all := svc.Bookings()
	require.Len(t, all, 2)
	assert.Equal(t, "new", all[0].ID)
	assert.Equal(t, "old", all[1].ID)
}

func TestPreviewQuote(t *testing.T) {
	svc, _ := newBookingFixture(t)

	quote, err := svc.PreviewQuote("101", "2026-01-03T08:00:00Z", "2026-01-03T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, quote.TotalPrice)
	assert.Len(t, quote.Breakdown, 2)

	// preview applies the same time-window rules
	_, err = svc.PreviewQuote("101", "2026-01-03T10:00:00Z", "2026-01-03T08:00:00Z")
	requireRejection(t, err, KindInvalidInput)

	_, err = svc.PreviewQuote("999", "2026-01-03T08:00:00Z", "2026-01-03T10:00:00Z")
	requireRejection(t, err, KindNotFound)

	// a missing room id is bad input, not an unknown room
	_, err = svc.PreviewQuote("", "2026-01-03T08:00:00Z", "2026-01-03T10:00:00Z")
	rej := requireRejection(t, err, KindInvalidInput)
	assert.Contains(t, rej.Reason, "room id is required")
}

func TestPricingInfo(t *testing.T) {
	svc, _ := newBookingFixture(t)

	info, err := svc.PricingInfo("101")
	require.NoError(t, err)
	assert.Equal(t, 500.0, info.BaseRate)
	assert.Equal(t, 750.0, info.PeakRate)

	_, err = svc.PricingInfo("999")
	requireRejection(t, err, KindNotFound)
}
