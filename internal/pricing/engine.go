// Package pricing computes booking prices from a room's base hourly rate and
// the configured peak-hour windows. All functions are pure: the engine holds
// configuration only and never touches stored state.
package pricing

import (
	"fmt"
	"math"
	"time"

	"github.com/iliyamo/meeting-room-booking/internal/config"
	"github.com/iliyamo/meeting-room-booking/internal/model"
)

// Engine classifies instants as peak or off-peak and prices intervals by
// splitting them into hour-aligned slots.
type Engine struct {
	peak PeakSchedule
	loc  *time.Location
}

// PeakSchedule is the engine's view of the peak configuration.
type PeakSchedule struct {
	MorningStart int
	MorningEnd   int
	EveningStart int
	EveningEnd   int
	Multiplier   float64
	Weekdays     map[time.Weekday]bool
}

// NewEngine builds an Engine from the loaded configuration. The timezone
// decides which local hour and weekday an instant falls on.
func NewEngine(cfg config.Config) *Engine {
	return &Engine{
		peak: PeakSchedule{
			MorningStart: cfg.Peak.MorningStart,
			MorningEnd:   cfg.Peak.MorningEnd,
			EveningStart: cfg.Peak.EveningStart,
			EveningEnd:   cfg.Peak.EveningEnd,
			Multiplier:   cfg.Peak.Multiplier,
			Weekdays:     cfg.Peak.Weekdays,
		},
		loc: cfg.Timezone,
	}
}

// IsPeak reports whether t falls inside a peak window: its local weekday
// must be a peak weekday and its local hour inside the morning or evening
// window (both half-open).
func (e *Engine) IsPeak(t time.Time) bool {
	lt := t.In(e.loc)
	if !e.peak.Weekdays[lt.Weekday()] {
		return false
	}
	h := lt.Hour()
	morning := h >= e.peak.MorningStart && h < e.peak.MorningEnd
	evening := h >= e.peak.EveningStart && h < e.peak.EveningEnd
	return morning || evening
}

// Quote prices the half-open interval [start, end) at the given base hourly
// rate. The interval is partitioned into consecutive one-hour slots anchored
// at start; the final slot may be shorter. Each slot is billed for its whole
// duration at a single rate chosen by the slot's start instant, so a slot
// straddling a peak-window edge is never pro-rated. An empty or inverted
// interval yields a zero quote with no breakdown; callers are expected to
// reject those upstream.
func (e *Engine) Quote(start, end time.Time, baseRate float64) model.Quote {
	var total float64
	var breakdown []model.SlotCharge

	for cur := start; cur.Before(end); cur = cur.Add(time.Hour) {
		slotEnd := cur.Add(time.Hour)
		if slotEnd.After(end) {
			slotEnd = end
		}
		hours := slotEnd.Sub(cur).Hours()

		rate := baseRate
		peak := e.IsPeak(cur)
		if peak {
			rate = baseRate * e.peak.Multiplier
		}
		total += rate * hours

		breakdown = append(breakdown, model.SlotCharge{
			SlotStart: cur,
			Rate:      rate,
			Peak:      peak,
		})
	}

	return model.Quote{
		TotalPrice: Round2(total),
		Breakdown:  breakdown,
	}
}

// Info returns the display description of the rate structure for a room.
func (e *Engine) Info(baseRate float64) model.PricingInfo {
	return model.PricingInfo{
		BaseRate: baseRate,
		PeakRate: baseRate * e.peak.Multiplier,
		PeakHours: model.PricingWindows{
			Morning: fmt.Sprintf("%d:00 - %d:00", e.peak.MorningStart, e.peak.MorningEnd),
			Evening: fmt.Sprintf("%d:00 - %d:00", e.peak.EveningStart, e.peak.EveningEnd),
			Days:    weekdayRange(e.peak.Weekdays),
		},
	}
}

// weekdayRange renders the peak weekday set as "First - Last" for the common
// contiguous case, or a comma list otherwise.
func weekdayRange(days map[time.Weekday]bool) string {
	var names []string
	first, last := time.Weekday(-1), time.Weekday(-1)
	contiguous := true
	for d := time.Sunday; d <= time.Saturday; d++ {
		if !days[d] {
			continue
		}
		if first == -1 {
			first = d
		} else if d != last+1 {
			contiguous = false
		}
		last = d
		names = append(names, d.String())
	}
	if len(names) == 0 {
		return "none"
	}
	if contiguous && len(names) > 1 {
		return first.String() + " - " + last.String()
	}
	if len(names) == 1 {
		return names[0]
	}
	out := names[0]
	for _, n := range names[1:] {
		out += ", " + n
	}
	return out
}

// Round2 rounds a monetary amount to two decimal places, half away from
// zero. Analytics aggregations round the same way prices are rounded.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
