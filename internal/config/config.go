package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// PeakHours describes when the peak multiplier applies to a room's base
// hourly rate. Hours are expressed in the business timezone and the windows
// are half-open: an hour h is peak when start <= h < end on a peak weekday.
type PeakHours struct {
	MorningStart int                   // first peak hour of the morning window
	MorningEnd   int                   // end of the morning window (exclusive)
	EveningStart int                   // first peak hour of the evening window
	EveningEnd   int                   // end of the evening window (exclusive)
	Multiplier   float64               // factor applied to the base rate during peak hours
	Weekdays     map[time.Weekday]bool // weekdays on which peak pricing is active
}

// BookingRules carries the time-window constraints enforced on bookings.
type BookingRules struct {
	MaxDurationHours     float64 // longest allowed booking
	MinCancellationHours float64 // minimum lead time for a cancellation
}

// Config holds all runtime configuration values. Each field corresponds to
// one or more environment variables; sensible defaults are applied so the
// service starts with no environment at all.
type Config struct {
	Env          string         // application environment (e.g. "dev", "prod")
	Port         string         // HTTP port to listen on
	Timezone     *time.Location // business timezone used for peak classification
	Peak         PeakHours      // peak pricing windows
	Rules        BookingRules   // booking time-window rules
	AdminKey     string         // shared key exchanged for an admin token; empty disables admin routes
	JWTSecret    string         // secret used to sign admin tokens
	AccessTTLMin int            // admin token time-to-live in minutes
}

// Load reads configuration from the environment. An unknown timezone is the
// only fatal condition: every pricing decision depends on it, so there is no
// sane fallback.
func Load() Config {
	tz := envStr("TIMEZONE", "Asia/Kolkata")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Fatalf("invalid TIMEZONE %q: %v", tz, err)
	}
	return Config{
		Env:      envStr("APP_ENV", "dev"),
		Port:     envStr("APP_PORT", "8080"),
		Timezone: loc,
		Peak: PeakHours{
			MorningStart: envInt("PEAK_MORNING_START", 10),
			MorningEnd:   envInt("PEAK_MORNING_END", 13),
			EveningStart: envInt("PEAK_EVENING_START", 16),
			EveningEnd:   envInt("PEAK_EVENING_END", 19),
			Multiplier:   envFloat("PEAK_MULTIPLIER", 1.5),
			Weekdays:     parseWeekdays(envStr("PEAK_WEEKDAYS", "1,2,3,4,5")),
		},
		Rules: BookingRules{
			MaxDurationHours:     envFloat("BOOKING_MAX_DURATION_HOURS", 12),
			MinCancellationHours: envFloat("BOOKING_MIN_CANCELLATION_HOURS", 2),
		},
		AdminKey:     os.Getenv("ADMIN_API_KEY"),
		JWTSecret:    envStr("JWT_SECRET", "dev-secret"),
		AccessTTLMin: envInt("ACCESS_TOKEN_TTL_MIN", 60),
	}
}

// parseWeekdays turns a comma-separated list of weekday numbers (0 = Sunday)
// into a lookup set. Out-of-range entries are ignored.
func parseWeekdays(s string) map[time.Weekday]bool {
	days := make(map[time.Weekday]bool)
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if n, err := strconv.Atoi(p); err == nil && n >= 0 && n <= 6 {
			days[time.Weekday(n)] = true
		}
	}
	return days
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envFloat(k string, d float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return d
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}
