package model

import "time"

// SlotCharge is one entry of a price breakdown: a single hour-aligned slot,
// the hourly rate applied to it and whether that rate was the peak rate.
// Breakdowns are derived per calculation and never persisted.
type SlotCharge struct {
	SlotStart time.Time `json:"slotStart"`
	Rate      float64   `json:"rate"`
	Peak      bool      `json:"isPeak"`
}

// Quote is the result of pricing an interval: the rounded total plus the
// chronological per-slot breakdown.
type Quote struct {
	TotalPrice float64      `json:"totalPrice"`
	Breakdown  []SlotCharge `json:"breakdown"`
}

// PricingInfo describes the rate structure of a room for display.
type PricingInfo struct {
	BaseRate  float64        `json:"baseRate"`
	PeakRate  float64        `json:"peakRate"`
	PeakHours PricingWindows `json:"peakHours"`
}

// PricingWindows is the human-readable description of the peak windows.
type PricingWindows struct {
	Morning string `json:"morning"`
	Evening string `json:"evening"`
	Days    string `json:"days"`
}
