package model

// Room is a bookable meeting room. Rooms are seeded at startup (or added by
// an administrator) and never mutated or deleted afterwards.
//
// Fields:
//  ID             – room identifier, e.g. "101".
//  Name           – display name shown to users.
//  BaseHourlyRate – off-peak price for one hour, in currency units.
//  Capacity       – number of seats.
type Room struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	BaseHourlyRate float64 `json:"baseHourlyRate"`
	Capacity       int     `json:"capacity"`
}

// RoomStats summarises booking activity for one room.
type RoomStats struct {
	RoomID            string `json:"roomId"`
	RoomName          string `json:"roomName"`
	TotalBookings     int    `json:"totalBookings"`
	ConfirmedBookings int    `json:"confirmedBookings"`
	CancelledBookings int    `json:"cancelledBookings"`
}
