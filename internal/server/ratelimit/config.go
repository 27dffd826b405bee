package ratelimit

import (
	"os"
	"strconv"
	"time"
)

// LoadConfig builds a Config from environment variables, falling back to
// defaults for anything unset or unparsable.
//
//	RATE_LIMIT_ENABLED        "false" disables rate limiting entirely
//	RATE_LIMIT_REQUESTS       requests allowed per window
//	RATE_LIMIT_WINDOW_SECONDS window length in seconds
//	RATE_LIMIT_BURST          bucket capacity (defaults to the limit)
func LoadConfig() *Config {
	config := DefaultConfig()

	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			config.Enabled = enabled
		}
	}
	if v := os.Getenv("RATE_LIMIT_REQUESTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			config.Limit = n
		}
	}
	if v := os.Getenv("RATE_LIMIT_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			config.Window = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			config.Burst = n
		}
	}

	return config
}
