// Package queue defines message payloads published to the message broker and
// the publisher that delivers them.
package queue

// BookingConfirmedEvent is published when a booking is created. It carries
// enough for downstream consumers (notifications, reporting) to act without
// calling back into the service.
type BookingConfirmedEvent struct {
	EventID     string  `json:"event_id"`
	BookingID   string  `json:"booking_id"`
	RoomID      string  `json:"room_id"`
	RoomName    string  `json:"room_name"`
	UserName    string  `json:"user_name"`
	StartsAt    string  `json:"starts_at"`
	EndsAt      string  `json:"ends_at"`
	TotalPrice  float64 `json:"total_price"`
	ConfirmedAt string  `json:"confirmed_at"`
}

// BookingCancelledEvent is published when a booking is cancelled.
type BookingCancelledEvent struct {
	EventID     string `json:"event_id"`
	BookingID   string `json:"booking_id"`
	RoomID      string `json:"room_id"`
	UserName    string `json:"user_name"`
	StartsAt    string `json:"starts_at"`
	CancelledAt string `json:"cancelled_at"`
}
