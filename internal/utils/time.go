package utils // package utils provides small shared helpers for time math and id generation

import "time"

// HoursBetween returns end minus start in hours. The result may be
// fractional and is negative when end precedes start; rejecting inverted
// intervals is the caller's job.
func HoursBetween(start, end time.Time) float64 {
	return end.Sub(start).Hours()
}

// Overlaps reports whether the half-open intervals [startA, endA) and
// [startB, endB) intersect. Touching endpoints do not count: a booking that
// ends exactly when another starts is not a conflict.
func Overlaps(startA, endA, startB, endB time.Time) bool {
	return startA.Before(endB) && endA.After(startB)
}
