package config

import "time"

// RateLimitConfig tunes the fixed-window request limiter. Limit requests are
// allowed per client IP and window; the counter lives in Redis so several
// instances share one budget.
type RateLimitConfig struct {
	Enabled bool
	Limit   int
	Window  time.Duration
	Prefix  string
}

func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled: envBool("RATE_LIMIT_ENABLED", true),
		Limit:   envInt("RATE_LIMIT_MAX", 120),
		Window:  envDur("RATE_LIMIT_WINDOW", time.Minute),
		Prefix:  envStr("RATE_LIMIT_PREFIX", "rl"),
	}
	if cfg.Limit < 1 {
		cfg.Limit = 1
	}
	// windows are counted in whole seconds
	if cfg.Window < time.Second {
		cfg.Window = time.Minute
	}
	return cfg
}
