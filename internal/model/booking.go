package model

import "time"

// Status is the closed set of booking states. A booking is created CONFIRMED
// and may transition to CANCELLED exactly once; there are no other states
// and no way back.
type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

// Valid reports whether s is one of the known states.
func (s Status) Valid() bool {
	return s == StatusConfirmed || s == StatusCancelled
}

// Booking records a confirmed (or later cancelled) reservation of a room for
// a half-open time interval [StartTime, EndTime). Bookings are never
// physically deleted; cancellation only flips the status.
//
// Fields:
//  ID         – generated identifier, e.g. "b_m1x2abcd_9f3c21aa".
//  RoomID     – the booked room.
//  UserName   – requester name, trimmed on entry.
//  StartTime  – interval start, stored in UTC.
//  EndTime    – interval end, stored in UTC.
//  TotalPrice – price fixed at creation time.
//  Status     – CONFIRMED or CANCELLED.
//  CreatedAt  – creation timestamp.
type Booking struct {
	ID         string    `json:"id"`
	RoomID     string    `json:"roomId"`
	UserName   string    `json:"userName"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	TotalPrice float64   `json:"totalPrice"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}
