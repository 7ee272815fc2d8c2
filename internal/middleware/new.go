package middleware

import (
	"todo-sync/config"
	"todo-sync/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New builds the middleware set. A disabled rate limit leaves limiter nil and
// RateLimit becomes a pass-through.
func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	mw := Middleware{l: l}
	if cfg.Enabled {
		mw.limiter = newRateLimiter(cfg.PerMin, cfg.MaxClients, cfg.TTL)
	}
	return mw
}
