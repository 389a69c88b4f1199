package service

import "time"

// Clock supplies the current time. The booking rules compare against "now",
// so tests inject a fixed clock instead of sleeping their way into edge
// cases.
type Clock interface {
	Now() time.Time
}

// RealClock is the production Clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
