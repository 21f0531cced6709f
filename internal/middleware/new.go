package middleware

import (
	"smb-task-tracker/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// Config holds middleware tunables.
type Config struct {
	RateLimitPerMin int
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.RateLimitPerMin),
	}
}
