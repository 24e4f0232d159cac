package config

import "time"

// RateLimitConfig defines settings for the token bucket rate limiter.
// Capacity is the bucket size, RefillTokens the number of tokens added
// every RefillInterval, and TTL how long idle buckets survive in Redis.
type RateLimitConfig struct {
    Enabled        bool
    Capacity       int
    RefillTokens   int
    RefillInterval time.Duration
    TTL            time.Duration
    Prefix         string
}

// LoadRateLimitConfig reads environment variables to build a
// RateLimitConfig.  Defaults allow a burst of 20 requests refilled at
// 10 per second per client IP and route.
func LoadRateLimitConfig() RateLimitConfig {
    return RateLimitConfig{
        Enabled:        envBool("RATE_LIMIT_ENABLED", true),
        Capacity:       atoi(getenv("RATE_LIMIT_CAPACITY", "20")),
        RefillTokens:   atoi(getenv("RATE_LIMIT_REFILL_TOKENS", "10")),
        RefillInterval: parseDur(getenv("RATE_LIMIT_REFILL_INTERVAL", "1s")),
        TTL:            parseDur(getenv("RATE_LIMIT_TTL", "10m")),
        Prefix:         getenv("RATE_LIMIT_PREFIX", "ratelimit"),
    }
}
