package model

// RoomAnalytics aggregates confirmed booking activity for one room within a
// queried date range. Hours and revenue are rounded to two decimals.
type RoomAnalytics struct {
	RoomID       string  `json:"roomId"`
	RoomName     string  `json:"roomName"`
	TotalHours   float64 `json:"totalHours"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// OverallStats is the overview report: a summary across all rooms plus the
// per-room breakdown sorted by revenue.
type OverallStats struct {
	DateRange struct {
		From string `json:"from"`
		To   string `json:"to"`
	} `json:"dateRange"`
	Summary struct {
		TotalRevenue          float64 `json:"totalRevenue"`
		TotalHours            float64 `json:"totalHours"`
		TotalRooms            int     `json:"totalRooms"`
		ActiveRooms           int     `json:"activeRooms"`
		AverageRevenuePerRoom float64 `json:"averageRevenuePerRoom"`
	} `json:"summary"`
	RoomBreakdown []RoomAnalytics `json:"roomBreakdown"`
}

// UtilizationMetrics counts bookings by outcome within a date range.
// Confirmed bookings are matched on start time, cancelled ones on creation
// time, mirroring how each kind enters the range.
type UtilizationMetrics struct {
	TotalBookings     int    `json:"totalBookings"`
	ConfirmedBookings int    `json:"confirmedBookings"`
	CancelledBookings int    `json:"cancelledBookings"`
	CancellationRate  string `json:"cancellationRate"`
}
