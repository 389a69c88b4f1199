// Package service contains the booking core: validation rules, pricing
// orchestration and analytics. Services are stateless; they read and write
// through injected store interfaces and report failures as typed rejections.
package service

import (
	"fmt"

	"github.com/iliyamo/meeting-room-booking/internal/model"
)

// Kind classifies a rejection. The request-handling layer maps each kind to
// an HTTP status; the service layer only decides which kind applies.
type Kind int

const (
	// KindInvalidInput covers malformed or missing fields, unparseable
	// timestamps and time-window rule violations. Always correctable by
	// the caller.
	KindInvalidInput Kind = iota + 1
	// KindNotFound means an unknown room or booking id.
	KindNotFound
	// KindConflict means the candidate interval overlaps an existing
	// confirmed booking for the same room.
	KindConflict
	// KindForbidden means a cancellation was attempted on an ineligible
	// booking or too close to its start.
	KindForbidden
)

// Rejection is a terminal, classified verdict. Nothing is retried
// internally: there is no I/O in the core, so nothing transient to retry.
type Rejection struct {
	Kind       Kind
	Reason     string
	Violations []string       // all field violations, for invalid-input rejections
	Conflict   *model.Booking // the colliding booking, for conflict rejections
}

func (r *Rejection) Error() string { return r.Reason }

func invalidInput(format string, args ...any) *Rejection {
	return &Rejection{Kind: KindInvalidInput, Reason: fmt.Sprintf(format, args...)}
}

func notFound(format string, args ...any) *Rejection {
	return &Rejection{Kind: KindNotFound, Reason: fmt.Sprintf(format, args...)}
}

func forbidden(format string, args ...any) *Rejection {
	return &Rejection{Kind: KindForbidden, Reason: fmt.Sprintf(format, args...)}
}
