package service

import (
	"strings"
	"time"

	"github.com/iliyamo/meeting-room-booking/internal/config"
	"github.com/iliyamo/meeting-room-booking/internal/model"
	"github.com/iliyamo/meeting-room-booking/internal/utils"
)

// Validator holds the configured booking rules and applies them as pure
// decision functions. It never mutates anything.
type Validator struct {
	rules config.BookingRules
	loc   *time.Location // used only to render times in rejection messages
}

func NewValidator(rules config.BookingRules, loc *time.Location) *Validator {
	return &Validator{rules: rules, loc: loc}
}

// CheckInput performs field-presence validation on a creation request and
// returns every violation, not just the first. Timestamp parseability is
// checked later, at parse time.
func (v *Validator) CheckInput(req CreateBookingRequest) []string {
	var violations []string
	if strings.TrimSpace(req.RoomID) == "" {
		violations = append(violations, "room id is required")
	}
	name := strings.TrimSpace(req.UserName)
	switch {
	case name == "":
		violations = append(violations, "user name is required")
	case len(name) < 2:
		violations = append(violations, "user name must be at least 2 characters long")
	}
	if req.StartTime == "" {
		violations = append(violations, "start time is required")
	}
	if req.EndTime == "" {
		violations = append(violations, "end time is required")
	}
	return violations
}

// CheckTimes validates the booking window against "now": the start must not
// be in the past, the interval must be well-formed and the duration must not
// exceed the configured maximum. The first failed rule decides the verdict.
func (v *Validator) CheckTimes(now, start, end time.Time) error {
	if start.Before(now) {
		return invalidInput("start time cannot be in the past")
	}
	if !start.Before(end) {
		return invalidInput("start time must be before end time")
	}
	if d := utils.HoursBetween(start, end); d > v.rules.MaxDurationHours {
		return invalidInput("booking duration cannot exceed %.0f hours, requested %.2f hours",
			v.rules.MaxDurationHours, d)
	}
	return nil
}

// FindConflict scans existing bookings for one that overlaps the candidate
// interval. Only CONFIRMED bookings for the same room count, and excludeID
// (when non-empty) skips the booking being updated. The first overlap found
// is the conflict; any overlapping confirmed booking would do.
func (v *Validator) FindConflict(roomID string, start, end time.Time, existing []model.Booking, excludeID string) *model.Booking {
	for i := range existing {
		b := &existing[i]
		if b.RoomID != roomID || b.Status != model.StatusConfirmed || b.ID == excludeID {
			continue
		}
		if utils.Overlaps(start, end, b.StartTime, b.EndTime) {
			return b
		}
	}
	return nil
}

// CheckCancellation decides whether a booking may still be cancelled. The
// checks are ordered: an already-cancelled booking reports that, whatever
// its times, so repeated cancellations always fail for the same reason.
func (v *Validator) CheckCancellation(now time.Time, b model.Booking) error {
	if b.Status == model.StatusCancelled {
		return forbidden("booking is already cancelled")
	}
	if !b.StartTime.After(now) {
		return forbidden("cannot cancel a booking that has already started or passed")
	}
	if remain := utils.HoursBetween(now, b.StartTime); remain < v.rules.MinCancellationHours {
		return forbidden("cancellation requires at least %.0f hours notice, %.2f hours remain",
			v.rules.MinCancellationHours, remain)
	}
	return nil
}

// conflictMessage renders the colliding interval in the business timezone.
func (v *Validator) conflictMessage(b *model.Booking) string {
	const layout = "02 Jan 2006 15:04"
	return "room already booked from " + b.StartTime.In(v.loc).Format(layout) +
		" to " + b.EndTime.In(v.loc).Format(layout)
}
